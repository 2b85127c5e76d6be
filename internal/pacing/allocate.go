package pacing

import "math"

// Allocation is an interval together with its share of the total distance
type Allocation struct {
	Interval Interval
	Distance float64 // rounded distance from IntervalDistance

	// Share is Distance as a fraction of the total. Correction is non-zero
	// only on the last allocation and absorbs the rounding drift of all the
	// others so the weights add up to exactly 1.
	Share      float64
	Correction float64
}

// Weight is the fraction of the total distance this interval effectively covers
func (a Allocation) Weight() float64 {
	return a.Share + a.Correction
}

// Percent is Weight on a 0-100 scale
func (a Allocation) Percent() float64 {
	return a.Weight() * 100
}

// IntervalDistance converts a relative size (0-100 scale) into a share of
// total, rounded to a step of 1% of total's order of magnitude. For a total
// of 2000 the step is 10, for 500 it is 1.
//
// total must be positive; callers validate it with ValidateDistance.
func IntervalDistance(size, total float64) float64 {
	minInc := math.Pow(10, magnitude(total)) / 100

	return roundHalfUp(roundHalfUp((size/(100*minInc))*total) * minInc)
}

// Allocate computes the distance share of every interval in order. The
// input set is not modified.
func Allocate(set IntervalSet, total float64) ([]Allocation, error) {
	if err := ValidateDistance(total); err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return nil, ErrEmptySet
	}

	allocs := make([]Allocation, len(set))
	var covered float64

	for i, iv := range set {
		dist := IntervalDistance(iv.Size, total)
		share := dist / total
		covered += share * total

		allocs[i] = Allocation{
			Interval: iv,
			Distance: dist,
			Share:    share,
		}
	}

	last := len(allocs) - 1
	allocs[last].Correction = (total - covered) / total

	return allocs, nil
}

// magnitude is floor(log10(x)), corrected for math.Log10 landing just
// below an exact power of ten.
func magnitude(x float64) float64 {
	e := math.Floor(math.Log10(x))
	if math.Pow(10, e+1) <= x {
		e++
	} else if math.Pow(10, e) > x {
		e--
	}
	return e
}

// roundHalfUp rounds .5 towards positive infinity
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
