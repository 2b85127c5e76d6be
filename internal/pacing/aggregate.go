package pacing

import "math"

// Aggregate returns the distance-weighted average split of the allocations in
// milliseconds, truncated to tenths of a second.
func Aggregate(allocs []Allocation) int64 {
	var total float64

	for i, a := range allocs {
		split := float64(a.Interval.SplitMilliseconds())

		total += split * a.Share
		if i == len(allocs)-1 {
			total += split * a.Correction
		}
	}

	return int64(math.Floor(total/100) * 100)
}

// CalculateAverageSplit allocates set over total and returns the average
// split in milliseconds.
//
// It also overwrites every interval's Size with the percentage of the
// distance it effectively covers after rounding, so the sizes of a set that
// started out summing to 100 still sum to 100 afterwards. Use Allocate and
// Aggregate directly to leave the set untouched.
func CalculateAverageSplit(set IntervalSet, total float64) (int64, error) {
	allocs, err := Allocate(set, total)
	if err != nil {
		return 0, err
	}

	for i, a := range allocs {
		set[i].Size = a.Percent()
	}

	return Aggregate(allocs), nil
}

// ProjectedTime is the time needed to cover distance when every splitUnit
// takes avgSplit milliseconds.
func ProjectedTime(avgSplit int64, distance, splitUnit float64) int64 {
	if splitUnit <= 0 {
		return 0
	}
	return int64(math.Floor(float64(avgSplit) * distance / splitUnit))
}
