package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/commitlens/commitlens/internal/models"
)

// Category classifies a commit's size relative to the repository's history.
type Category int

const (
	LikelyHuman Category = iota
	PossibleAI
	LikelyAI
)

// String returns the human-readable label used in reports
func (c Category) String() string {
	switch c {
	case LikelyHuman:
		return "Likely Human"
	case PossibleAI:
		return "Possible AI"
	case LikelyAI:
		return "Likely AI"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the category as its report label
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseCategory converts a stored label back to a Category
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Likely Human":
		return LikelyHuman, nil
	case "Possible AI":
		return PossibleAI, nil
	case "Likely AI":
		return LikelyAI, nil
	default:
		return LikelyHuman, fmt.Errorf("unknown category %q", s)
	}
}

// Percent is a percentage change that may be undefined. The first commit
// has no baseline, and a commit applied to an emptied repository divides
// by zero; both are reported as undefined rather than 0 or +Inf so they
// stay distinguishable from a genuine 0% change.
type Percent struct {
	Valid bool
	Value float64
}

// DefinedPercent returns a defined percentage value
func DefinedPercent(v float64) Percent {
	return Percent{Valid: true, Value: v}
}

// UndefinedPercent returns the undefined sentinel
func UndefinedPercent() Percent {
	return Percent{}
}

// MarshalJSON encodes undefined percentages as null
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// UnmarshalJSON decodes null as the undefined sentinel
func (p *Percent) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Percent{}
		return nil
	}
	p.Valid = true
	return json.Unmarshal(data, &p.Value)
}

// Measurement enriches a commit with its running-total context.
type Measurement struct {
	Commit       models.CommitRecord `json:"commit"`
	LinesChanged int                 `json:"lines_changed"`
	TotalBefore  int                 `json:"total_lines_before"`
	TotalAfter   int                 `json:"total_lines_after"`
	Percent      Percent             `json:"percent_change"`
}

// Classified is a measurement with its assigned category. Created once by
// the classifier and never mutated afterward.
type Classified struct {
	Measurement
	Category Category `json:"category"`
}

// Summary holds the distribution statistics computed over a full series.
// Line-change statistics cover every commit; percentage statistics cover
// only the defined percentage values.
type Summary struct {
	Count int `json:"count"`

	ChangesMean   float64 `json:"changes_mean"`
	ChangesMedian float64 `json:"changes_median"`
	ChangesStdDev float64 `json:"changes_std"`

	PercentMean   float64 `json:"pct_mean"`
	PercentMedian float64 `json:"pct_median"`
	PercentStdDev float64 `json:"pct_std"`
	Q1            float64 `json:"pct_q1"`
	Q3            float64 `json:"pct_q3"`
	IQR           float64 `json:"pct_iqr"`

	// Tukey fences derived from Q1/Q3. LowerBound may be negative;
	// classification clamps it at 0 since percentage change never is.
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`

	// HasFences is false when fewer than 2 defined percentage values
	// exist and quartile statistics are meaningless.
	HasFences bool `json:"has_fences"`
}
