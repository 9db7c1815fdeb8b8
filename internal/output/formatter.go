package output

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/commitlens/commitlens/internal/analysis"
)

// Report is everything the reporter needs for one analysis.
type Report struct {
	Source      string                `json:"source"`
	Ref         string                `json:"ref"`
	RunID       string                `json:"run_id,omitempty"`
	GeneratedAt time.Time             `json:"generated_at"`
	Records     []analysis.Classified `json:"records"`
	Summary     analysis.Summary      `json:"summary"`
}

// Tally counts records per category
func (r *Report) Tally() (likelyAI, possibleAI, likelyHuman int) {
	for _, rec := range r.Records {
		switch rec.Category {
		case analysis.LikelyAI:
			likelyAI++
		case analysis.PossibleAI:
			possibleAI++
		case analysis.LikelyHuman:
			likelyHuman++
		}
	}
	return
}

// Formatter defines output formatting interface
type Formatter interface {
	Format(r *Report, w io.Writer) error
}

// Format selects how a report is rendered
type Format string

const (
	FormatTable Format = "table" // full per-commit table plus statistics
	FormatJSON  Format = "json"  // machine-readable
	FormatQuiet Format = "quiet" // one-line summary
)

// NewFormatter creates the appropriate formatter for a format
func NewFormatter(f Format) Formatter {
	switch f {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatQuiet:
		return &QuietFormatter{}
	default:
		return &TableFormatter{}
	}
}

// DefaultFormat returns the appropriate default based on environment
func DefaultFormat() Format {
	// CI context keeps the human-readable table
	if os.Getenv("CI") == "true" {
		return FormatTable
	}

	// Piped output gets machine-readable JSON
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return FormatJSON
	}

	return FormatTable
}
