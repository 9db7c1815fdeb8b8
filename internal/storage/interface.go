package storage

import (
	"context"
	"errors"

	"github.com/commitlens/commitlens/internal/analysis"
	"github.com/commitlens/commitlens/internal/models"
)

// Common errors
var (
	ErrNotFound = errors.New("not found")
)

// Store persists analysis runs
type Store interface {
	// SaveRun stores a run together with its classified commits
	SaveRun(ctx context.Context, run *models.AnalysisRun, records []analysis.Classified) error

	// GetRun returns one run and its classified commits
	GetRun(ctx context.Context, id string) (*models.AnalysisRun, []analysis.Classified, error)

	// ListRuns returns the most recent runs, newest first
	ListRuns(ctx context.Context, limit int) ([]*models.AnalysisRun, error)

	// Close connection
	Close() error
}
