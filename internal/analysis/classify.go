package analysis

// DefaultFenceMultiplier is the classic Tukey fence factor.
const DefaultFenceMultiplier = 1.5

// Classify labels every measurement in the series using Tukey fences over
// the defined percentage-change values. The statistics are global: a
// record's label depends on commits that come later in history too, so
// the full series must be materialized first.
func Classify(series []Measurement) ([]Classified, Summary) {
	return ClassifyFence(series, DefaultFenceMultiplier)
}

// ClassifyFence is Classify with an explicit fence multiplier.
// Deterministic, and never fails on well-formed input.
func ClassifyFence(series []Measurement, multiplier float64) ([]Classified, Summary) {
	summary := summarize(series, multiplier)

	out := make([]Classified, 0, len(series))
	for i, m := range series {
		out = append(out, Classified{
			Measurement: m,
			Category:    categorize(i, m, summary),
		})
	}
	return out, summary
}

func categorize(index int, m Measurement, s Summary) Category {
	// Too few defined values for quartiles. The first commit is still
	// treated as the strongest anomaly signal; anything after it
	// carries no signal and passes as human.
	if !s.HasFences {
		if index == 0 {
			return LikelyAI
		}
		return LikelyHuman
	}

	// No baseline means the commit replaced the entire prior state.
	// That holds for the initial commit and for a commit applied to an
	// emptied repository alike: the strongest size signal there is.
	if !m.Percent.Valid {
		return LikelyAI
	}

	p := m.Percent.Value
	switch {
	case p > s.UpperBound:
		return LikelyAI
	case p > s.Q3:
		// Larger than typical but inside the fence. Note a value
		// exactly at Q3 does not qualify, and one exactly at the
		// upper bound is not an outlier.
		return PossibleAI
	default:
		return LikelyHuman
	}
}

func summarize(series []Measurement, multiplier float64) Summary {
	changes := make([]float64, 0, len(series))
	percents := make([]float64, 0, len(series))
	for _, m := range series {
		changes = append(changes, float64(m.LinesChanged))
		if m.Percent.Valid {
			percents = append(percents, m.Percent.Value)
		}
	}

	sortedChanges := sortedCopy(changes)
	sortedPercents := sortedCopy(percents)
	s := Summary{
		Count:         len(percents),
		ChangesMean:   mean(changes),
		ChangesMedian: median(sortedChanges),
		ChangesStdDev: stdev(changes),
		PercentMean:   mean(percents),
		PercentMedian: median(sortedPercents),
		PercentStdDev: stdev(percents),
	}

	if len(percents) < 2 {
		return s
	}

	s.Q1 = percentile(sortedPercents, 25)
	s.Q3 = percentile(sortedPercents, 75)
	s.IQR = s.Q3 - s.Q1
	s.LowerBound = s.Q1 - multiplier*s.IQR
	s.UpperBound = s.Q3 + multiplier*s.IQR
	s.HasFences = true
	return s
}
