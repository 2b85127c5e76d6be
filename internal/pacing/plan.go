package pacing

// Plan is the computed view of an interval set over a distance
type Plan struct {
	Distance      float64
	SplitUnit     float64
	Allocations   []Allocation
	AverageSplit  int64 // milliseconds per SplitUnit
	ProjectedTime int64 // milliseconds for the whole Distance
}

// NewPlan allocates set over distance and aggregates the average split.
// The set is not modified.
func NewPlan(set IntervalSet, distance, splitUnit float64) (Plan, error) {
	allocs, err := Allocate(set, distance)
	if err != nil {
		return Plan{}, err
	}

	avg := Aggregate(allocs)

	return Plan{
		Distance:      distance,
		SplitUnit:     splitUnit,
		Allocations:   allocs,
		AverageSplit:  avg,
		ProjectedTime: ProjectedTime(avg, distance, splitUnit),
	}, nil
}

// AverageSplitText formats AverageSplit for display
func (p Plan) AverageSplitText() string {
	return FormatMilliseconds(p.AverageSplit)
}

// ProjectedTimeText formats ProjectedTime for display
func (p Plan) ProjectedTimeText() string {
	return FormatMilliseconds(p.ProjectedTime)
}

// Profile samples the target split along the distance, one value in seconds
// per point, for charting. Each interval gets points in proportion to its
// weight.
func (p Plan) Profile(points int) []float64 {
	if points <= 0 || len(p.Allocations) == 0 {
		return nil
	}

	out := make([]float64, 0, points)
	var reached float64
	for i, a := range p.Allocations {
		reached += a.Weight()
		end := int(reached*float64(points) + 0.5)
		if i == len(p.Allocations)-1 {
			end = points
		}

		secs := float64(a.Interval.SplitMilliseconds()) / 1000
		for len(out) < end {
			out = append(out, secs)
		}
	}
	return out
}
