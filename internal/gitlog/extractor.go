package gitlog

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/commitlens/commitlens/internal/errors"
	"github.com/commitlens/commitlens/internal/models"
)

const defaultWorkers = 8

// Extractor walks a repository's history and produces one CommitRecord
// per commit, ancestor-first.
type Extractor struct {
	repoPath string
	gitBin   string
	workers  int
	logger   *logrus.Logger
}

// NewExtractor creates an Extractor for the given repository path
func NewExtractor(repoPath, gitBin string, workers int, logger *logrus.Logger) *Extractor {
	if gitBin == "" {
		gitBin = "git"
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Extractor{repoPath: repoPath, gitBin: gitBin, workers: workers, logger: logger}
}

func (e *Extractor) git(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.gitBin, args...)
	cmd.Dir = e.repoPath
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, errors.GitErrorf(err, "git %s failed: %s",
				strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, errors.GitErrorf(err, "git %s failed", strings.Join(args, " "))
	}
	return out, nil
}

// ListCommits returns all commit hashes reachable from ref, oldest first.
func (e *Extractor) ListCommits(ctx context.Context, ref string) ([]string, error) {
	if ref == "" {
		ref = "HEAD"
	}
	out, err := e.git(ctx, "rev-list", "--reverse", ref)
	if err != nil {
		return nil, err
	}

	var hashes []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hashes = append(hashes, line)
		}
	}
	if len(hashes) == 0 {
		return nil, errors.DataErrorf("no commits found for ref %s", ref)
	}
	return hashes, nil
}

// Extract produces the full ordered commit sequence for ref. Per-commit
// metadata is fetched concurrently under a bounded errgroup; each worker
// writes to its own index, so ordering survives the concurrency. The
// first commit's stats come from its own diff against the empty tree;
// every later commit is diffed against the previously listed commit,
// which on a linear first-parent walk is its parent.
func (e *Extractor) Extract(ctx context.Context, ref string) ([]models.CommitRecord, error) {
	hashes, err := e.ListCommits(ctx, ref)
	if err != nil {
		return nil, err
	}
	e.logger.WithField("commits", len(hashes)).Debug("walking history")

	records := make([]models.CommitRecord, len(hashes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range hashes {
		i := i
		g.Go(func() error {
			rec, err := e.extractOne(gctx, hashes, i)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *Extractor) extractOne(ctx context.Context, hashes []string, i int) (models.CommitRecord, error) {
	hash := hashes[i]

	ts, err := e.commitTime(ctx, hash)
	if err != nil {
		return models.CommitRecord{}, err
	}

	var out []byte
	if i == 0 {
		out, err = e.git(ctx, "show", "--numstat", "--format=", hash)
	} else {
		out, err = e.git(ctx, "diff", "--numstat", hashes[i-1], hash)
	}
	if err != nil {
		return models.CommitRecord{}, err
	}

	added, removed := ParseNumstat(string(out))
	return models.CommitRecord{
		Hash:         hash,
		Timestamp:    ts,
		LinesAdded:   added,
		LinesRemoved: removed,
	}, nil
}

func (e *Extractor) commitTime(ctx context.Context, hash string) (time.Time, error) {
	out, err := e.git(ctx, "show", "-s", "--format=%cI", hash)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(string(out)))
	if err != nil {
		return time.Time{}, errors.GitErrorf(err, "bad commit date for %s", hash)
	}
	return ts, nil
}
