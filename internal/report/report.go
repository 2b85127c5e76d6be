// Package report renders a computed plan for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"pacer/internal/pacing"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Summary is the printable form of a plan
type Summary struct {
	Distance        float64       `json:"distance" yaml:"distance"`
	DistanceText    string        `json:"distanceText" yaml:"distance_text"`
	SplitUnit       float64       `json:"splitUnit" yaml:"split_unit"`
	AverageSplit    string        `json:"averageSplit" yaml:"average_split"`
	AverageSplitMs  int64         `json:"averageSplitMs" yaml:"average_split_ms"`
	ProjectedTime   string        `json:"projectedTime" yaml:"projected_time"`
	ProjectedTimeMs int64         `json:"projectedTimeMs" yaml:"projected_time_ms"`
	Intervals       []IntervalRow `json:"intervals" yaml:"intervals"`
}

// IntervalRow describes one interval of a summary
type IntervalRow struct {
	Index        int     `json:"index" yaml:"index"`
	Percent      float64 `json:"percent" yaml:"percent"`
	Distance     float64 `json:"distance" yaml:"distance"`
	DistanceText string  `json:"distanceText" yaml:"distance_text"`
	Split        string  `json:"split" yaml:"split"`
}

// NewSummary builds a Summary from a plan, formatting distances in u
func NewSummary(p pacing.Plan, u Units) Summary {
	s := Summary{
		Distance:        p.Distance,
		DistanceText:    u.FormatDistance(p.Distance),
		SplitUnit:       p.SplitUnit,
		AverageSplit:    p.AverageSplitText(),
		AverageSplitMs:  p.AverageSplit,
		ProjectedTime:   p.ProjectedTimeText(),
		ProjectedTimeMs: p.ProjectedTime,
		Intervals:       make([]IntervalRow, len(p.Allocations)),
	}

	// The last row covers whatever the rounded distances of the others left
	var covered float64
	for i, a := range p.Allocations {
		dist := a.Distance
		if i == len(p.Allocations)-1 {
			dist = p.Distance - covered
		}
		covered += a.Distance

		s.Intervals[i] = IntervalRow{
			Index:        i + 1,
			Percent:      a.Percent(),
			Distance:     dist,
			DistanceText: u.FormatDistance(dist),
			Split:        pacing.FormatSplit(a.Interval),
		}
	}
	return s
}

// Text renders the summary as an aligned table
func (s Summary) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Distance:       %s\n", s.DistanceText)
	fmt.Fprintf(&b, "Average split:  %s /%gm\n", s.AverageSplit, s.SplitUnit)
	fmt.Fprintf(&b, "Projected time: %s\n", s.ProjectedTime)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%3s  %7s  %12s  %7s\n", "#", "Share", "Distance", "Split")
	for _, row := range s.Intervals {
		fmt.Fprintf(&b, "%3d  %6.1f%%  %12s  %7s\n", row.Index, row.Percent, row.DistanceText, row.Split)
	}

	return b.String()
}

// Write renders s to w in the given format
func Write(w io.Writer, s Summary, format string) error {
	switch format {
	case "", FormatText:
		_, err := io.WriteString(w, s.Text())
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}
