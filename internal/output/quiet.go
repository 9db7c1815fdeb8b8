package output

import (
	"fmt"
	"io"
)

// QuietFormatter prints a one-line summary, suitable for hooks and
// scripts that only care about the verdict counts.
type QuietFormatter struct{}

// Format implements Formatter
func (f *QuietFormatter) Format(r *Report, w io.Writer) error {
	likelyAI, possibleAI, likelyHuman := r.Tally()
	_, err := fmt.Fprintf(w, "%s: %d commits | likely-ai=%d possible-ai=%d likely-human=%d\n",
		r.Source, len(r.Records), likelyAI, possibleAI, likelyHuman)
	return err
}
