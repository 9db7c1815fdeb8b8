package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndStdev(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.InDelta(t, 2.0, mean([]float64{1, 2, 3}), 1e-9)

	// Sample standard deviation of 2,4,4,4,5,5,7,9 is ~2.138
	assert.InDelta(t, 2.138, stdev([]float64{2, 4, 4, 4, 5, 5, 7, 9}), 0.001)
	assert.Equal(t, 0.0, stdev([]float64{42}))
	assert.Equal(t, 0.0, stdev(nil))
}

func TestPercentileInterpolation(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty", nil, 50, 0},
		{"single", []float64{7}, 25, 7},
		{"median of even sample", []float64{1, 2, 3, 4}, 50, 2.5},
		{"median of odd sample", []float64{1, 2, 3}, 50, 2},
		{"q1 of four values", []float64{10, 20, 30, 40}, 25, 17.5},
		{"q3 of four values", []float64{10, 20, 30, 40}, 75, 32.5},
		{"min", []float64{10, 20, 30}, 0, 10},
		{"max", []float64{10, 20, 30}, 100, 30},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.InDelta(t, test.want, percentile(test.sorted, test.p), 1e-9)
		})
	}
}

func TestSortedCopyLeavesInputAlone(t *testing.T) {
	in := []float64{3, 1, 2}
	out := sortedCopy(in)
	assert.Equal(t, []float64{1, 2, 3}, out)
	assert.Equal(t, []float64{3, 1, 2}, in)
}
