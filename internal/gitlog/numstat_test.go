package gitlog

import (
	"testing"
)

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		expectAdded   int
		expectRemoved int
	}{
		{
			name:          "empty output",
			output:        "",
			expectAdded:   0,
			expectRemoved: 0,
		},
		{
			name:          "single file",
			output:        "10\t2\tmain.go\n",
			expectAdded:   10,
			expectRemoved: 2,
		},
		{
			name:          "multiple files",
			output:        "10\t2\tmain.go\n5\t0\tREADME.md\n0\t7\told.go\n",
			expectAdded:   15,
			expectRemoved: 9,
		},
		{
			name:          "binary files skipped",
			output:        "-\t-\tlogo.png\n3\t1\tmain.go\n",
			expectAdded:   3,
			expectRemoved: 1,
		},
		{
			name:          "malformed lines skipped",
			output:        "not numstat at all\n\n12\t4\tpkg/a.go\n",
			expectAdded:   12,
			expectRemoved: 4,
		},
		{
			name:          "file with tabs in rename notation",
			output:        "2\t2\tpkg/{old => new}/a.go\n",
			expectAdded:   2,
			expectRemoved: 2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			added, removed := ParseNumstat(test.output)
			if added != test.expectAdded {
				t.Errorf("Expected %d lines added, got %d", test.expectAdded, added)
			}
			if removed != test.expectRemoved {
				t.Errorf("Expected %d lines removed, got %d", test.expectRemoved, removed)
			}
		})
	}
}
