package models

import (
	"time"
)

// CommitRecord is one commit as reported by the history extractor.
// Records are ordered ancestor-first and never mutated after extraction.
type CommitRecord struct {
	Hash         string    `json:"hash" db:"hash"`
	Timestamp    time.Time `json:"timestamp" db:"committed_at"`
	LinesAdded   int       `json:"lines_added" db:"lines_added"`
	LinesRemoved int       `json:"lines_removed" db:"lines_removed"`
}

// ShortHash returns the first 10 characters of the commit hash,
// the width used in reports.
func (c CommitRecord) ShortHash() string {
	if len(c.Hash) <= 10 {
		return c.Hash
	}
	return c.Hash[:10]
}

// AnalysisRun is one persisted analysis of a repository's history.
type AnalysisRun struct {
	ID          string    `json:"id" db:"id"`
	Source      string    `json:"source" db:"source"`
	Ref         string    `json:"ref" db:"ref"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	CommitCount int       `json:"commit_count" db:"commit_count"`

	// FenceMultiplier used for this run, kept so the fences can be
	// rebuilt when re-rendering.
	FenceMultiplier float64 `json:"fence_multiplier" db:"fence_multiplier"`

	// Category tallies
	LikelyAI    int `json:"likely_ai" db:"likely_ai"`
	PossibleAI  int `json:"possible_ai" db:"possible_ai"`
	LikelyHuman int `json:"likely_human" db:"likely_human"`

	// Distribution summary at the time of the run
	ChangesMean   float64 `json:"changes_mean" db:"changes_mean"`
	ChangesMedian float64 `json:"changes_median" db:"changes_median"`
	ChangesStdDev float64 `json:"changes_std" db:"changes_std"`
	PercentMean   float64 `json:"pct_mean" db:"pct_mean"`
	PercentMedian float64 `json:"pct_median" db:"pct_median"`
	PercentStdDev float64 `json:"pct_std" db:"pct_std"`
	PercentQ1     float64 `json:"pct_q1" db:"pct_q1"`
	PercentQ3     float64 `json:"pct_q3" db:"pct_q3"`
	PercentIQR    float64 `json:"pct_iqr" db:"pct_iqr"`
}
