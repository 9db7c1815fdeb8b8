package analysis

import (
	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/models"
)

// BuildSeries folds an ordered commit sequence into measurements carrying
// a running line total. The input must be ancestor-first; ordering is the
// extractor's responsibility and is not re-checked here, but an empty
// input fails fast.
//
// The running total is order-dependent: TotalAfter of record i is
// TotalBefore of record i+1, so the fold must never be recomputed out of
// order.
func BuildSeries(commits []models.CommitRecord) ([]Measurement, error) {
	if len(commits) == 0 {
		return nil, errors.DataError("commit sequence is empty")
	}

	series := make([]Measurement, 0, len(commits))
	total := 0
	for i, c := range commits {
		m := Measurement{
			Commit:       c,
			LinesChanged: c.LinesAdded + c.LinesRemoved,
			TotalBefore:  total,
		}

		// A removal exceeding the running total is natural data
		// (e.g. numstat skipping binary files), not corruption.
		// Clamp rather than underflow.
		after := total + c.LinesAdded - c.LinesRemoved
		if after < 0 {
			after = 0
		}
		m.TotalAfter = after

		// The first commit has no baseline; a zero baseline later in
		// history (repository fully emptied) would divide by zero.
		// Both stay undefined.
		if i > 0 && total > 0 {
			m.Percent = DefinedPercent(float64(m.LinesChanged) / float64(total) * 100)
		}

		series = append(series, m)
		total = after
	}
	return series, nil
}
