package pacing

import (
	"math"

	"go.uber.org/zap/zapcore"
)

const (
	// SmallestIntervalSize is the lowest size an editable interval may shrink to
	SmallestIntervalSize = 5.0

	// UndoLimit is the default number of snapshots kept on the undo stack
	UndoLimit = 100

	// DefaultDistance seeds a fresh session
	DefaultDistance = 2000.0

	// DefaultSplitUnit is the distance a split time refers to (500m, rowing style)
	DefaultSplitUnit = 500.0
)

// NotANumber marks a time component that could not be parsed
const NotANumber = math.MinInt

// Interval is one pacing segment of a plan. Size is a relative weight,
// conventionally 0-100. Milliseconds holds tenths only: 0, 100, ... 900.
type Interval struct {
	Size         float64 `json:"size"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	Milliseconds int     `json:"milliseconds"`
	RawInput     string  `json:"rawInput"`
}

// DefaultInterval covers the whole distance at a 2:00 split
var DefaultInterval = Interval{
	Size:         100,
	Minutes:      2,
	Seconds:      0,
	Milliseconds: 0,
	RawInput:     "2:00",
}

// Split returns the interval's target split as a Split
func (i Interval) Split() Split {
	return Split{Minutes: i.Minutes, Seconds: i.Seconds, Milliseconds: i.Milliseconds}
}

// SetSplit copies the components of s into the interval
func (i *Interval) SetSplit(s Split) {
	i.Minutes = s.Minutes
	i.Seconds = s.Seconds
	i.Milliseconds = s.Milliseconds
}

// SplitMilliseconds is the target split in milliseconds, truncated to tenths
func (i Interval) SplitMilliseconds() int64 {
	return i.Split().Total()
}

// MarshalLogObject implements zapcore.ObjectMarshaler
func (i Interval) MarshalLogObject(e zapcore.ObjectEncoder) error {
	e.AddFloat64("size", i.Size)
	e.AddString("split", FormatSplit(i))
	e.AddString("raw", i.RawInput)
	return nil
}

// IntervalSet is an ordered list of intervals, first to last
type IntervalSet []Interval

// DefaultIntervals returns a fresh set holding only DefaultInterval
func DefaultIntervals() IntervalSet {
	return IntervalSet{DefaultInterval}
}

// Clone returns a deep copy of the set
func (s IntervalSet) Clone() IntervalSet {
	if s == nil {
		return nil
	}
	out := make(IntervalSet, len(s))
	copy(out, s)
	return out
}

// TotalSize sums the size of every interval
func (s IntervalSet) TotalSize() float64 {
	var total float64
	for _, iv := range s {
		total += iv.Size
	}
	return total
}

// Canonical returns a copy whose RawInput fields are re-derived from the
// structured split of each interval.
func (s IntervalSet) Canonical() IntervalSet {
	out := s.Clone()
	for i := range out {
		out[i].RawInput = FormatSplit(out[i])
	}
	return out
}

// MarshalLogArray implements zapcore.ArrayMarshaler
func (s IntervalSet) MarshalLogArray(e zapcore.ArrayEncoder) error {
	for _, iv := range s {
		if err := e.AppendObject(iv); err != nil {
			return err
		}
	}
	return nil
}
