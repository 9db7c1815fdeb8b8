package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/internal/analysis"
	"github.com/commitlens/commitlens/internal/gitlog"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/commitlens/commitlens/internal/output"
	"github.com/commitlens/commitlens/internal/storage"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repo-url-or-path>",
	Short: "Analyze a repository's commit history for anomalously large commits",
	Long: `Clones the repository (or opens a local working tree), walks its full
history oldest-first, and classifies every commit by how its relative
size compares to the rest of the history:

  Likely AI     - relative change beyond the Tukey outlier fence
  Possible AI   - larger than typical (above Q3) but inside the fence
  Likely Human  - within the normal distribution

The initial commit has no baseline and is always flagged Likely AI.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("ref", "", "ref to walk (default: HEAD, or git.ref from config)")
	analyzeCmd.Flags().String("format", "", "output format: table, json or quiet (default: auto)")
	analyzeCmd.Flags().Bool("save", false, "persist the run to the local database")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	source := args[0]

	ref, _ := cmd.Flags().GetString("ref")
	if ref == "" {
		ref = cfg.Git.Ref
	}

	repoPath, cleanup, err := resolveRepo(ctx, source)
	if err != nil {
		return err
	}
	defer cleanup()

	extractor := gitlog.NewExtractor(repoPath, cfg.Git.Binary, cfg.Git.Workers, logger)
	commits, err := extractor.Extract(ctx, ref)
	if err != nil {
		return err
	}
	logger.WithField("commits", len(commits)).Debug("history extracted")

	series, err := analysis.BuildSeries(commits)
	if err != nil {
		return err
	}
	records, summary := analysis.ClassifyFence(series, cfg.Analysis.FenceMultiplier)

	report := &output.Report{
		Source:      gitlog.DisplayName(source),
		Ref:         ref,
		GeneratedAt: time.Now().UTC(),
		Records:     records,
		Summary:     summary,
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveReport(ctx, report); err != nil {
			return err
		}
		logger.WithField("run", report.RunID).Info("run saved")
	}

	return renderReport(cmd, report)
}

// resolveRepo turns a source argument into a local repository path,
// cloning remote URLs into a temporary directory.
func resolveRepo(ctx context.Context, source string) (path string, cleanup func(), err error) {
	if !gitlog.IsRemoteURL(source) {
		if err := gitlog.DetectRepo(ctx, cfg.Git.Binary, source); err != nil {
			return "", nil, err
		}
		return source, func() {}, nil
	}

	dir, err := os.MkdirTemp(cfg.Git.CloneDir, "commitlens-*")
	if err != nil {
		return "", nil, fmt.Errorf("create clone directory: %w", err)
	}
	logger.WithField("url", source).Info("cloning repository")
	if err := gitlog.Clone(ctx, cfg.Git.Binary, source, dir); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return dir, func() { os.RemoveAll(dir) }, nil
}

func saveReport(ctx context.Context, report *output.Report) error {
	store, err := storage.NewSQLiteStore(cfg.Storage.Path, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	likelyAI, possibleAI, likelyHuman := report.Tally()
	run := &models.AnalysisRun{
		ID:              uuid.NewString(),
		Source:          report.Source,
		Ref:             report.Ref,
		CreatedAt:       report.GeneratedAt,
		CommitCount:     len(report.Records),
		FenceMultiplier: cfg.Analysis.FenceMultiplier,
		LikelyAI:        likelyAI,
		PossibleAI:      possibleAI,
		LikelyHuman:     likelyHuman,
		ChangesMean:     report.Summary.ChangesMean,
		ChangesMedian:   report.Summary.ChangesMedian,
		ChangesStdDev:   report.Summary.ChangesStdDev,
		PercentMean:     report.Summary.PercentMean,
		PercentMedian:   report.Summary.PercentMedian,
		PercentStdDev:   report.Summary.PercentStdDev,
		PercentQ1:       report.Summary.Q1,
		PercentQ3:       report.Summary.Q3,
		PercentIQR:      report.Summary.IQR,
	}
	if err := store.SaveRun(ctx, run, report.Records); err != nil {
		return err
	}
	report.RunID = run.ID
	return nil
}

func renderReport(cmd *cobra.Command, report *output.Report) error {
	flagValue, _ := cmd.Flags().GetString("format")
	return output.NewFormatter(resolveFormat(flagValue)).Format(report, os.Stdout)
}

// resolveFormat picks the output format: explicit flag first, then the
// configured default, then environment-based detection.
func resolveFormat(flagValue string) output.Format {
	if flagValue == "" {
		flagValue = cfg.Output.Format
	}
	if flagValue == "" {
		return output.DefaultFormat()
	}
	return output.Format(flagValue)
}
