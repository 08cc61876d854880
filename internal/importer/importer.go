// Package importer implements the bulk import pipeline: it parses a source
// document into candidate jobs, drops candidates whose identity triple
// matches a tombstone or an existing job, scores the survivors and inserts
// them in a single transaction.
package importer

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"JobOrganizer-backend/internal/model"
)

// ErrSourceNotFound is returned when the source document does not exist.
var ErrSourceNotFound = errors.New("import source not found")

// ErrConflict is returned when an insert hits the jobs identity unique
// index, i.e. a concurrent import already created the same job.
var ErrConflict = errors.New("job already exists")

// DefaultSourcePath is the document imported when no path is configured.
const DefaultSourcePath = "JOBS_SOURCE.md"

// Parser turns raw source text into candidate jobs, in document order.
// Candidates must carry at least title, company and location; the parser is
// expected to drop records that don't.
type Parser interface {
	Parse(raw string) []model.EditableJobInfo
}

// Scorer assigns a priority and a numeric score to a candidate job.
type Scorer interface {
	Score(job model.EditableJobInfo) (model.Priority, int)
}

// Importer runs the import pipeline against a store.
type Importer struct {
	DB     *gorm.DB
	Parser Parser
	Scorer Scorer

	now func() time.Time
}

// New builds an Importer with the default markdown parser and keyword scorer.
func New(db *gorm.DB) *Importer {
	return &Importer{
		DB:     db,
		Parser: &MarkdownParser{},
		Scorer: NewKeywordScorer(),
		now:    time.Now,
	}
}

// Run imports the document at path and returns the number of jobs inserted.
// A missing file maps to ErrSourceNotFound.
func (im *Importer) Run(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return 0, err
	}
	return im.ImportDocument(string(content))
}

// ImportDocument runs the pipeline over raw source text. All inserts happen
// in one transaction: either every surviving candidate is committed or none.
func (im *Importer) ImportDocument(raw string) (int, error) {
	if im.now == nil {
		im.now = time.Now
	}

	imported := 0

	err := im.DB.Transaction(func(tx *gorm.DB) error {
		var tombstones []model.DeletedJob
		if err := tx.Find(&tombstones).Error; err != nil {
			return err
		}
		deleted := make(map[[3]string]bool, len(tombstones))
		for i := range tombstones {
			deleted[tombstones[i].Identity()] = true
		}

		// identity triples already inserted during this run, so a document
		// repeating a job does not abort the whole transaction on the
		// unique index
		seen := map[[3]string]bool{}

		for _, candidate := range im.Parser.Parse(raw) {
			identity := [3]string{candidate.Title, candidate.Company, candidate.Location}
			if deleted[identity] || seen[identity] {
				continue
			}

			var count int64
			if err := tx.Model(&model.Job{}).
				Where("title = ? AND company = ? AND location = ?",
					candidate.Title, candidate.Company, candidate.Location).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			priority, score := im.Scorer.Score(candidate)
			now := im.now()
			job := model.Job{
				EditableJobInfo: candidate,
				Priority:        priority,
				Score:           score,
				DateAdded:       now,
				DateModified:    now,
			}
			if err := tx.Create(&job).Error; err != nil {
				return err
			}

			seen[identity] = true
			imported++
		}

		return nil
	})
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: concurrent import inserted the same job", ErrConflict)
		}
		return 0, err
	}

	return imported, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
