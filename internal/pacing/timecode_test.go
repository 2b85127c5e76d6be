package pacing

import (
	"math"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		raw  string
		want Split
	}{
		{"2:30.5", Split{2, 30, 500}},
		{"0:00", Split{0, 0, 0}},
		{"5", Split{5, 0, 0}},
		{"1:05", Split{1, 5, 0}},
		{"2:30.", Split{2, 30, 0}},       // empty fraction ignored
		{"2:30.55", Split{2, 30, 5500}},  // only the first digit is meant to count
		{" 3:07", Split{3, 7, 0}},        // leading whitespace
		{"1:30abc", Split{1, 30, 0}},     // trailing garbage after digits
		{"1:2:3", Split{1, 2, 0}},        // extra colon tokens dropped
		{"abc", Split{NotANumber, 0, 0}}, // malformed minutes
		{"", Split{NotANumber, 0, 0}},
		{"1:xx", Split{1, NotANumber, 0}},
		{"1:30.x", Split{1, 30, NotANumber}},
		{":30", Split{NotANumber, 30, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseTime(tt.raw)
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseTimeSaturates(t *testing.T) {
	tests := []struct {
		raw  string
		want Split
	}{
		{"1:00.184467440737095517", Split{1, 0, math.MaxInt}},
		{"1:00.-184467440737095517", Split{1, 0, math.MinInt + 1}},
		{"99999999999999999999:00", Split{math.MaxInt, 0, 0}},
		{"-99999999999999999999:00", Split{math.MinInt + 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseTime(tt.raw)
			if got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if !got.Valid() {
				t.Errorf("ParseTime(%q) should not report a malformed token", tt.raw)
			}
		})
	}
}

func TestSplitTotal(t *testing.T) {
	if got := ParseTime("2:30.5").Total(); got != 150500 {
		t.Errorf("Total() = %d, want 150500", got)
	}
	if got := (Split{Minutes: 1, Seconds: 2, Milliseconds: 550}).Total(); got != 62500 {
		t.Errorf("Total() = %d, want 62500", got)
	}
}

func TestSplitValid(t *testing.T) {
	if !ParseTime("2:00").Valid() {
		t.Error("2:00 should be valid")
	}
	if ParseTime("x:00").Valid() {
		t.Error("x:00 should not be valid")
	}
}

func TestFormatSplit(t *testing.T) {
	tests := []struct {
		interval Interval
		want     string
	}{
		{Interval{Minutes: 2}, "2:00"},
		{Interval{Minutes: 2, Seconds: 30, Milliseconds: 500}, "2:30.5"},
		{Interval{Minutes: 1, Seconds: 5}, "1:05"},
		{Interval{Minutes: 0, Seconds: 9, Milliseconds: 900}, "0:09.9"},
		{Interval{Minutes: 2, Seconds: 30, Milliseconds: 5500}, "2:30.5"}, // first digit only
		{Interval{Minutes: 2, Seconds: 30, Milliseconds: 50}, "2:30.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatSplit(tt.interval)
			if got != tt.want {
				t.Errorf("FormatSplit(%+v) = %q, want %q", tt.interval, got, tt.want)
			}
		})
	}
}

func TestFormatMilliseconds(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{754300, "12:34.3"},
		{3754300, "1:02:34.3"},
		{0, "0:00.0"},
		{150000, "2:30.0"},
		{540000, "9:00.0"},
		{600000, "10:00.0"},
		{59999, "0:59.9"},
		{3600000, "1:00:00.0"},
		{-754300, "12:34.3"}, // sign dropped
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatMilliseconds(tt.ms)
			if got != tt.want {
				t.Errorf("FormatMilliseconds(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func TestConvertMilliseconds(t *testing.T) {
	h, m, s, rem := ConvertMilliseconds(3754321)
	if h != 1 || m != 2 || s != 34 || rem != 321 {
		t.Errorf("ConvertMilliseconds(3754321) = %d, %d, %d, %d, want 1, 2, 34, 321", h, m, s, rem)
	}

	h, m, s, rem = ConvertMilliseconds(-61500)
	if h != 0 || m != 1 || s != 1 || rem != 500 {
		t.Errorf("ConvertMilliseconds(-61500) = %d, %d, %d, %d, want 0, 1, 1, 500", h, m, s, rem)
	}
}

func TestToMilliseconds(t *testing.T) {
	if got := ToMilliseconds(1, 2, 34, 300); got != 3754300 {
		t.Errorf("ToMilliseconds(1, 2, 34, 300) = %d, want 3754300", got)
	}
}

func TestSplitMillisecondsTruncatesToTenths(t *testing.T) {
	iv := Interval{Minutes: 1, Seconds: 2, Milliseconds: 5500}
	// 5500 truncates to 5500, 550 would truncate to 500
	if got := iv.SplitMilliseconds(); got != 67500 {
		t.Errorf("SplitMilliseconds() = %d, want 67500", got)
	}

	iv.Milliseconds = 550
	if got := iv.SplitMilliseconds(); got != 62500 {
		t.Errorf("SplitMilliseconds() = %d, want 62500", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for minutes := 0; minutes <= 9; minutes++ {
		for _, seconds := range []int{0, 5, 30, 59} {
			for ms := 0; ms <= 900; ms += 100 {
				iv := Interval{Minutes: minutes, Seconds: seconds, Milliseconds: ms}
				raw := FormatSplit(iv)

				got := ParseTime(raw)
				if got != iv.Split() {
					t.Errorf("ParseTime(FormatSplit(%+v)) = %+v via %q", iv.Split(), got, raw)
				}
			}
		}
	}
}
