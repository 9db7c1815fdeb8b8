package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/internal/analysis"
	"github.com/commitlens/commitlens/internal/models"
	"github.com/commitlens/commitlens/internal/output"
	"github.com/commitlens/commitlens/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List analysis runs saved with --save",
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Re-render a saved analysis run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

func init() {
	runsCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	runsShowCmd.Flags().String("format", "", "output format: table, json or quiet (default: auto)")
	runsCmd.AddCommand(runsShowCmd)
}

func openStore() (storage.Store, error) {
	return storage.NewSQLiteStore(cfg.Storage.Path, logger)
}

func runRunsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs. Use 'commitlens analyze --save' to record one.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tSOURCE\tREF\tDATE\tCOMMITS\tLIKELY AI\tPOSSIBLE AI\tLIKELY HUMAN")
	for _, run := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID, run.Source, run.Ref,
			run.CreatedAt.Format("2006-01-02 15:04"),
			run.CommitCount, run.LikelyAI, run.PossibleAI, run.LikelyHuman)
	}
	return tw.Flush()
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	run, records, err := store.GetRun(ctx, args[0])
	if err == storage.ErrNotFound {
		return fmt.Errorf("run %s not found", args[0])
	}
	if err != nil {
		return err
	}

	report := &output.Report{
		Source:      run.Source,
		Ref:         run.Ref,
		RunID:       run.ID,
		GeneratedAt: run.CreatedAt,
		Records:     records,
		Summary:     summaryFromRun(run, records),
	}

	return renderReport(cmd, report)
}

// summaryFromRun rebuilds a Summary from the stored run columns. Fences
// are recomputed from the stored quartiles and multiplier.
func summaryFromRun(run *models.AnalysisRun, records []analysis.Classified) analysis.Summary {
	count := 0
	for _, rec := range records {
		if rec.Percent.Valid {
			count++
		}
	}

	s := analysis.Summary{
		Count:         count,
		ChangesMean:   run.ChangesMean,
		ChangesMedian: run.ChangesMedian,
		ChangesStdDev: run.ChangesStdDev,
		PercentMean:   run.PercentMean,
		PercentMedian: run.PercentMedian,
		PercentStdDev: run.PercentStdDev,
	}
	if count >= 2 {
		s.Q1 = run.PercentQ1
		s.Q3 = run.PercentQ3
		s.IQR = run.PercentIQR
		s.LowerBound = run.PercentQ1 - run.FenceMultiplier*run.PercentIQR
		s.UpperBound = run.PercentQ3 + run.FenceMultiplier*run.PercentIQR
		s.HasFences = true
	}
	return s
}
