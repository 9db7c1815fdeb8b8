package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/commitlens/commitlens/internal/analysis"
)

// TableFormatter renders the per-commit table and the statistics block.
type TableFormatter struct{}

// Format implements Formatter
func (f *TableFormatter) Format(r *Report, w io.Writer) error {
	fmt.Fprintf(w, "Analyzed %s (%s): %d commits\n\n", r.Source, r.Ref, len(r.Records))

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMIT\tDATE\tLINES CHANGED\t% CHANGE\tTOTAL LINES\tCONTRIBUTION")
	for _, rec := range r.Records {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%s\n",
			rec.Commit.ShortHash(),
			rec.Commit.Timestamp.Format("2006-01-02 15:04:05 -0700"),
			rec.LinesChanged,
			FormatPercent(rec.Percent),
			rec.TotalAfter,
			rec.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	writeStatistics(w, r.Summary)

	likelyAI, possibleAI, likelyHuman := r.Tally()
	fmt.Fprintf(w, "\nLikely AI: %d  Possible AI: %d  Likely Human: %d\n",
		likelyAI, possibleAI, likelyHuman)
	return nil
}

// FormatPercent renders a percentage value, or "N/A" when undefined
func FormatPercent(p analysis.Percent) string {
	if !p.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", p.Value)
}

func writeStatistics(w io.Writer, s analysis.Summary) {
	fmt.Fprintln(w, "Repository Statistics:")
	fmt.Fprintln(w, strings.Repeat("-", 50))

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Changes per commit (mean)\t%.2f\n", s.ChangesMean)
	fmt.Fprintf(tw, "Changes per commit (median)\t%.2f\n", s.ChangesMedian)
	fmt.Fprintf(tw, "Changes standard deviation\t%.2f\n", s.ChangesStdDev)
	fmt.Fprintf(tw, "Percentage change (mean)\t%.2f%%\n", s.PercentMean)
	fmt.Fprintf(tw, "Percentage change (median)\t%.2f%%\n", s.PercentMedian)
	fmt.Fprintf(tw, "Percentage change (std)\t%.2f%%\n", s.PercentStdDev)
	if s.HasFences {
		fmt.Fprintf(tw, "Percentage Q1 (25th percentile)\t%.2f%%\n", s.Q1)
		fmt.Fprintf(tw, "Percentage Q3 (75th percentile)\t%.2f%%\n", s.Q3)
		fmt.Fprintf(tw, "Percentage IQR\t%.2f%%\n", s.IQR)
		fmt.Fprintf(tw, "Outlier bound (Q3 + fence)\t%.2f%%\n", s.UpperBound)
	} else {
		fmt.Fprintln(tw, "Quartiles\tn/a (too few data points)")
	}
	tw.Flush()
}
