package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter emits the full report as indented JSON for machine
// consumption (CI gates, AI assistants, further processing).
type JSONFormatter struct{}

// Format implements Formatter
func (f *JSONFormatter) Format(r *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
