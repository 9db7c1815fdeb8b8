package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/commitlens/commitlens/internal/config"
	clerrors "github.com/commitlens/commitlens/internal/errors"
)

var (
	// Version information (set by build flags)
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"

	cfgFile string
	verbose bool
	logger  *logrus.Logger
	cfg     *config.Config
)

func main() {
	// Ctrl-C cancels in-flight git subprocesses via the command context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", formatError(err))
		os.Exit(1)
	}
}

// formatError prefixes categorized errors with their category
func formatError(err error) string {
	var clErr *clerrors.Error
	if stderrors.As(err, &clErr) {
		return clErr.DetailedString()
	}
	return err.Error()
}

var rootCmd = &cobra.Command{
	Use:   "commitlens",
	Short: "commitlens - spot statistically anomalous commits in a repository's history",
	Long: `commitlens walks the full commit history of a git repository, measures
each commit's size relative to the codebase at that point in time, and
flags commits whose relative size is a statistical outlier - a telltale
of large machine-generated changes.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logrus.New()
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.InfoLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			logger.WithError(err).Warn("Failed to load config, using defaults")
			cfg = config.Default()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .commitlens/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.SetVersionTemplate(`commitlens {{.Version}}
Build time: ` + BuildTime + `
Git commit: ` + GitCommit + `
`)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(runsCmd)
}
