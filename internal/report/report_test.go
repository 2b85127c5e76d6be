package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"pacer/internal/pacing"
)

func testPlan(t *testing.T) pacing.Plan {
	t.Helper()

	set := pacing.IntervalSet{
		{Size: 50, Minutes: 2, RawInput: "2:00"},
		{Size: 50, Minutes: 3, RawInput: "3:00"},
	}
	p, err := pacing.NewPlan(set, 1000, 500)
	if err != nil {
		t.Fatalf("NewPlan() error = %v", err)
	}
	return p
}

func TestNewSummary(t *testing.T) {
	s := NewSummary(testPlan(t), NewUnits("m"))

	if s.AverageSplit != "2:30.0" || s.AverageSplitMs != 150000 {
		t.Errorf("AverageSplit = %q (%d), want 2:30.0 (150000)", s.AverageSplit, s.AverageSplitMs)
	}
	if s.ProjectedTime != "5:00.0" {
		t.Errorf("ProjectedTime = %q, want 5:00.0", s.ProjectedTime)
	}
	if s.DistanceText != "1,000 m" {
		t.Errorf("DistanceText = %q, want 1,000 m", s.DistanceText)
	}
	if len(s.Intervals) != 2 {
		t.Fatalf("len(Intervals) = %d, want 2", len(s.Intervals))
	}

	for i, want := range []IntervalRow{
		{Index: 1, Percent: 50, Distance: 500, DistanceText: "500 m", Split: "2:00"},
		{Index: 2, Percent: 50, Distance: 500, DistanceText: "500 m", Split: "3:00"},
	} {
		if s.Intervals[i] != want {
			t.Errorf("Intervals[%d] = %+v, want %+v", i, s.Intervals[i], want)
		}
	}
}

func TestSummaryText(t *testing.T) {
	text := NewSummary(testPlan(t), NewUnits("m")).Text()

	for _, want := range []string{
		"Distance:       1,000 m",
		"Average split:  2:30.0 /500m",
		"Projected time: 5:00.0",
		"  1    50.0%         500 m     2:00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q:\n%s", want, text)
		}
	}
}

func TestWrite(t *testing.T) {
	s := NewSummary(testPlan(t), NewUnits("km"))

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, s, FormatJSON); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		var got Summary
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if got.AverageSplitMs != 150000 || got.DistanceText != "1 km" {
			t.Errorf("decoded = %+v", got)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, s, FormatYAML); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		var got Summary
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid yaml: %v", err)
		}
		if got.AverageSplit != "2:30.0" {
			t.Errorf("decoded AverageSplit = %q", got.AverageSplit)
		}
		if len(got.Intervals) != 2 || got.Intervals[1].Split != "3:00" {
			t.Errorf("decoded intervals = %+v", got.Intervals)
		}
	})

	t.Run("text default", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, s, ""); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if buf.String() != s.Text() {
			t.Error("empty format should render text")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Write(&bytes.Buffer{}, s, "xml"); err == nil {
			t.Error("Write(xml) should fail")
		}
	})
}

func TestUnits(t *testing.T) {
	tests := []struct {
		unit   string
		meters float64
		want   string
	}{
		{"m", 2000, "2,000 m"},
		{"m", 42195, "42,195 m"},
		{"km", 5000, "5 km"},
		{"km", 21097.5, "21.1 km"},
		{"mi", 1609.34, "1 mi"},
		{"furlong", 800, "800 m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := NewUnits(tt.unit).FormatDistance(tt.meters)
			if got != tt.want {
				t.Errorf("FormatDistance(%v) = %q, want %q", tt.meters, got, tt.want)
			}
		})
	}
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		unit    string
		input   string
		want    float64
		wantErr bool
	}{
		{"m", "2000", 2000, false},
		{"m", "2,000 m", 2000, false},
		{"km", "5", 5000, false},
		{"km", " 10 km ", 10000, false},
		{"mi", "1", 1609.34, false},
		{"m", "two", 0, true},
		{"m", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.unit+"/"+tt.input, func(t *testing.T) {
			got, err := NewUnits(tt.unit).ParseDistance(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDistance(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDistance(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
