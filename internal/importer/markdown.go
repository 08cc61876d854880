package importer

import (
	"strings"

	"github.com/lib/pq"

	"JobOrganizer-backend/internal/model"
)

// MarkdownParser parses the jobs source document. Each job is a section:
//
//	## Backend Engineer
//	- Company: TechNova
//	- Location: Remote
//	- Website: https://technova.example.com/careers
//	- Type: FULL_TIME
//	- Technologies: Go, PostgreSQL, Docker
//	- Requirements: 3y backend experience
//	- Benefits: Remote work, Stock options
//	Free text under the section becomes the description.
//
// Sections missing title, company or location are dropped. Unknown bullet
// keys are ignored.
type MarkdownParser struct{}

// Parse extracts candidate jobs from raw markdown, in document order.
func (p *MarkdownParser) Parse(raw string) []model.EditableJobInfo {
	var jobs []model.EditableJobInfo

	var current *model.EditableJobInfo
	var descLines []string

	finish := func() {
		if current == nil {
			return
		}
		if current.Title != "" && current.Company != "" && current.Location != "" {
			if desc := strings.TrimSpace(strings.Join(descLines, "\n")); desc != "" {
				current.Description = &desc
			}
			jobs = append(jobs, *current)
		}
		current = nil
		descLines = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "## ") {
			finish()
			current = &model.EditableJobInfo{
				Title:  strings.TrimSpace(strings.TrimPrefix(trimmed, "## ")),
				Type:   model.TypeFullTime,
				Status: model.StatusWishlist,
			}
			continue
		}

		if current == nil || trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "- ") {
			key, value, ok := strings.Cut(strings.TrimPrefix(trimmed, "- "), ":")
			if !ok {
				continue
			}
			p.setField(current, strings.TrimSpace(key), strings.TrimSpace(value))
			continue
		}

		descLines = append(descLines, trimmed)
	}
	finish()

	return jobs
}

func (p *MarkdownParser) setField(job *model.EditableJobInfo, key, value string) {
	if value == "" {
		return
	}
	switch strings.ToLower(key) {
	case "company":
		job.Company = value
	case "location":
		job.Location = value
	case "website", "contact", "url":
		job.ContactWebsite = &value
	case "type":
		if t := model.JobType(strings.ToUpper(value)); t.Valid() {
			job.Type = t
		}
	case "technologies", "tech":
		job.Technologies = splitList(value)
	case "requirements":
		job.Requirements = splitList(value)
	case "benefits":
		job.Benefits = splitList(value)
	case "comments":
		job.Comments = &value
	case "situation":
		job.Situation = &value
	}
}

func splitList(value string) pq.StringArray {
	parts := strings.Split(value, ",")
	out := make(pq.StringArray, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
