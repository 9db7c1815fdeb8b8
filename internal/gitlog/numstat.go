package gitlog

import (
	"strconv"
	"strings"
)

// ParseNumstat sums the added and removed columns of git numstat output.
// Binary files report "-" in both columns and are skipped, as are any
// malformed lines.
func ParseNumstat(output string) (added, removed int) {
	for _, line := range strings.Split(output, "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		a, errA := strconv.Atoi(parts[0])
		r, errR := strconv.Atoi(parts[1])
		if errA != nil || errR != nil {
			continue
		}
		added += a
		removed += r
	}
	return added, removed
}
