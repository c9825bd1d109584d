package trace

// TraceSummary aggregates statistics from a Trace.
type TraceSummary struct {
	Steps         int
	Crossings     int
	PairCrossings int
	SoloCrossings int
	Returns       int
	MaxLoad       int            // heaviest load carried across in a single crossing
	ReturnsByName map[string]int // display name → number of trips back to origin
}

// Summarize computes aggregate statistics from a Trace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(t *Trace) *TraceSummary {
	summary := &TraceSummary{
		ReturnsByName: make(map[string]int),
	}
	if t == nil {
		return summary
	}

	for _, r := range t.Records {
		if r.Step > summary.Steps {
			summary.Steps = r.Step
		}
		switch r.Kind {
		case KindCrossing:
			summary.Crossings++
			if len(r.Movers) > 1 {
				summary.PairCrossings++
			} else {
				summary.SoloCrossings++
			}
			if r.Load > summary.MaxLoad {
				summary.MaxLoad = r.Load
			}
		case KindReturn:
			summary.Returns++
			for _, name := range r.Movers {
				summary.ReturnsByName[name]++
			}
		}
	}

	return summary
}
