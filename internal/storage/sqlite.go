package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/commitlens/commitlens/internal/analysis"
	clerrors "github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/models"
)

// SQLiteStore implements Store using a local SQLite database
type SQLiteStore struct {
	db     *sqlx.DB
	logger *logrus.Logger
}

// NewSQLiteStore opens (and if needed creates) the database at path
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, clerrors.StorageErrorf(err, "create database directory %s", dir)
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, clerrors.StorageError(err, "connect to sqlite")
	}

	// WAL mode for better concurrency
	db.Exec("PRAGMA foreign_keys = ON")
	db.Exec("PRAGMA journal_mode = WAL")

	store := &SQLiteStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		return nil, clerrors.StorageError(err, "init schema")
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		ref TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		commit_count INTEGER NOT NULL,
		fence_multiplier REAL NOT NULL,
		likely_ai INTEGER NOT NULL,
		possible_ai INTEGER NOT NULL,
		likely_human INTEGER NOT NULL,
		changes_mean REAL,
		changes_median REAL,
		changes_std REAL,
		pct_mean REAL,
		pct_median REAL,
		pct_std REAL,
		pct_q1 REAL,
		pct_q3 REAL,
		pct_iqr REAL
	);

	CREATE TABLE IF NOT EXISTS run_commits (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		hash TEXT NOT NULL,
		committed_at DATETIME NOT NULL,
		lines_added INTEGER NOT NULL,
		lines_removed INTEGER NOT NULL,
		lines_changed INTEGER NOT NULL,
		total_before INTEGER NOT NULL,
		total_after INTEGER NOT NULL,
		pct_change REAL,
		category TEXT NOT NULL,
		PRIMARY KEY (run_id, seq),
		FOREIGN KEY (run_id) REFERENCES runs(id)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun stores a run and its classified commits in one transaction
func (s *SQLiteStore) SaveRun(ctx context.Context, run *models.AnalysisRun, records []analysis.Classified) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return clerrors.StorageError(err, "begin transaction")
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO runs (id, source, ref, created_at, commit_count, fence_multiplier,
			likely_ai, possible_ai, likely_human,
			changes_mean, changes_median, changes_std,
			pct_mean, pct_median, pct_std, pct_q1, pct_q3, pct_iqr)
		VALUES (:id, :source, :ref, :created_at, :commit_count, :fence_multiplier,
			:likely_ai, :possible_ai, :likely_human,
			:changes_mean, :changes_median, :changes_std,
			:pct_mean, :pct_median, :pct_std, :pct_q1, :pct_q3, :pct_iqr)`, run)
	if err != nil {
		return clerrors.StorageError(err, "insert run")
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO run_commits (run_id, seq, hash, committed_at,
			lines_added, lines_removed, lines_changed,
			total_before, total_after, pct_change, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return clerrors.StorageError(err, "prepare commit insert")
	}
	defer stmt.Close()

	for i, rec := range records {
		var pct sql.NullFloat64
		if rec.Percent.Valid {
			pct = sql.NullFloat64{Float64: rec.Percent.Value, Valid: true}
		}
		_, err := stmt.ExecContext(ctx, run.ID, i, rec.Commit.Hash, rec.Commit.Timestamp,
			rec.Commit.LinesAdded, rec.Commit.LinesRemoved, rec.LinesChanged,
			rec.TotalBefore, rec.TotalAfter, pct, rec.Category.String())
		if err != nil {
			return clerrors.StorageErrorf(err, "insert commit %s", rec.Commit.Hash)
		}
	}

	if err := tx.Commit(); err != nil {
		return clerrors.StorageError(err, "commit transaction")
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"run": run.ID, "commits": len(records)}).Debug("saved run")
	}
	return nil
}

type commitRow struct {
	RunID        string          `db:"run_id"`
	Seq          int             `db:"seq"`
	Hash         string          `db:"hash"`
	CommittedAt  sql.NullTime    `db:"committed_at"`
	LinesAdded   int             `db:"lines_added"`
	LinesRemoved int             `db:"lines_removed"`
	LinesChanged int             `db:"lines_changed"`
	TotalBefore  int             `db:"total_before"`
	TotalAfter   int             `db:"total_after"`
	PctChange    sql.NullFloat64 `db:"pct_change"`
	Category     string          `db:"category"`
}

// GetRun returns one run and its classified commits, in history order
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*models.AnalysisRun, []analysis.Classified, error) {
	var run models.AnalysisRun
	err := s.db.GetContext(ctx, &run, `SELECT * FROM runs WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, clerrors.StorageErrorf(err, "load run %s", id)
	}

	var rows []commitRow
	err = s.db.SelectContext(ctx, &rows,
		`SELECT * FROM run_commits WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, nil, clerrors.StorageErrorf(err, "load commits for run %s", id)
	}

	records := make([]analysis.Classified, 0, len(rows))
	for _, row := range rows {
		cat, err := analysis.ParseCategory(row.Category)
		if err != nil {
			return nil, nil, clerrors.StorageErrorf(err, "run %s seq %d", id, row.Seq)
		}
		rec := analysis.Classified{Category: cat}
		rec.Commit = models.CommitRecord{
			Hash:         row.Hash,
			Timestamp:    row.CommittedAt.Time,
			LinesAdded:   row.LinesAdded,
			LinesRemoved: row.LinesRemoved,
		}
		rec.LinesChanged = row.LinesChanged
		rec.TotalBefore = row.TotalBefore
		rec.TotalAfter = row.TotalAfter
		if row.PctChange.Valid {
			rec.Percent = analysis.DefinedPercent(row.PctChange.Float64)
		}
		records = append(records, rec)
	}
	return &run, records, nil
}

// ListRuns returns the most recent runs, newest first
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*models.AnalysisRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []*models.AnalysisRun
	err := s.db.SelectContext(ctx, &runs,
		`SELECT * FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, clerrors.StorageError(err, "list runs")
	}
	return runs, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
