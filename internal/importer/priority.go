package importer

import (
	"strings"

	"JobOrganizer-backend/internal/model"
)

// Priority thresholds over the keyword score.
const (
	highThreshold   = 60
	mediumThreshold = 25
	maxScore        = 100
)

// KeywordScorer computes a deterministic score from a candidate's
// technologies plus small bonuses for remote work and preferred employment
// types, then maps the score to a priority by fixed thresholds.
type KeywordScorer struct {
	TechWeights map[string]int
	TypeBonus   map[model.JobType]int
	RemoteBonus int
}

// NewKeywordScorer returns a scorer with the default weight table.
func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{
		TechWeights: map[string]int{
			"go":         25,
			"golang":     25,
			"postgresql": 15,
			"postgres":   15,
			"kubernetes": 15,
			"docker":     10,
			"rust":       10,
			"python":     10,
			"typescript": 5,
			"redis":      5,
			"kafka":      5,
			"aws":        5,
		},
		TypeBonus: map[model.JobType]int{
			model.TypeFullTime: 10,
			model.TypeContract: 5,
		},
		RemoteBonus: 15,
	}
}

// Score returns the priority and numeric score for a candidate.
func (s *KeywordScorer) Score(job model.EditableJobInfo) (model.Priority, int) {
	score := 0

	for _, tech := range job.Technologies {
		score += s.TechWeights[strings.ToLower(strings.TrimSpace(tech))]
	}

	if strings.Contains(strings.ToLower(job.Location), "remote") {
		score += s.RemoteBonus
	}

	score += s.TypeBonus[job.Type]

	if score > maxScore {
		score = maxScore
	}

	switch {
	case score >= highThreshold:
		return model.PriorityHigh, score
	case score >= mediumThreshold:
		return model.PriorityMedium, score
	default:
		return model.PriorityLow, score
	}
}
