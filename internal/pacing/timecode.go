package pacing

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Split is a parsed split timestamp. Any component may hold NotANumber when
// the matching token was malformed; ValidateSplit reports that.
type Split struct {
	Minutes      int
	Seconds      int
	Milliseconds int
}

// Valid reports whether every component parsed to a number
func (s Split) Valid() bool {
	return s.Minutes != NotANumber && s.Seconds != NotANumber && s.Milliseconds != NotANumber
}

// Total converts the split to milliseconds with the millisecond part
// truncated to tenths of a second.
func (s Split) Total() int64 {
	return ToMilliseconds(0, s.Minutes, s.Seconds, (s.Milliseconds/100)*100)
}

// ParseTime parses "M:SS.D", "M:SS" or "M". The fractional part is read as
// an integer and multiplied by 100, so "2:30.55" yields 5500 milliseconds.
// Missing seconds and milliseconds are 0. It never fails: malformed tokens
// come back as NotANumber.
func ParseTime(raw string) Split {
	colonParts := strings.Split(raw, ":")

	split := Split{Minutes: parseLeadingInt(colonParts[0])}

	if len(colonParts) > 1 {
		decimalParts := strings.Split(colonParts[1], ".")

		split.Seconds = parseLeadingInt(decimalParts[0])

		if len(decimalParts) > 1 && decimalParts[1] != "" {
			split.Milliseconds = scaleFraction(parseLeadingInt(decimalParts[1]))
		}
	}

	return split
}

// parseLeadingInt reads an optionally signed run of digits after leading
// whitespace and ignores whatever follows it ("30abc" is 30).
func parseLeadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\f\v")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return NotANumber
	}

	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// Atoi clamps to the int range; keep the result clear of NotANumber
		// so it is reported as out of range rather than malformed.
		if n == NotANumber {
			n++
		}
		return n
	}
	if err != nil {
		return NotANumber
	}
	return n
}

// scaleFraction turns the digits after the decimal point into milliseconds,
// saturating instead of wrapping around.
func scaleFraction(n int) int {
	switch {
	case n == NotANumber:
		return NotANumber
	case n > math.MaxInt/100:
		return math.MaxInt
	case n < math.MinInt/100:
		return math.MinInt + 1
	}
	return n * 100
}

// FormatSplit renders an interval's split as "M:SS", adding ".D" when it has
// milliseconds. D is the first digit of milliseconds/100; nothing is rounded.
func FormatSplit(i Interval) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(i.Minutes))
	b.WriteByte(':')
	b.WriteString(padTwo(int64(i.Seconds)))

	if i.Milliseconds > 0 {
		b.WriteByte('.')
		b.WriteByte(strconv.Itoa(i.Milliseconds / 100)[0])
	}

	return b.String()
}

// ConvertMilliseconds splits the magnitude of ms into hours, minutes,
// seconds and the remaining milliseconds.
func ConvertMilliseconds(ms int64) (hours, minutes, seconds, remainder int64) {
	if ms < 0 {
		ms = -ms
	}

	hours = ms / msPerHour
	minutes = (ms % msPerHour) / msPerMinute
	seconds = (ms % msPerMinute) / msPerSecond
	remainder = ms % msPerSecond

	return hours, minutes, seconds, remainder
}

// FormatMilliseconds renders a duration as "H:MM:SS.D" or "M:SS.D". The sign
// is dropped. Minutes are zero padded only when hours are shown or there are
// more than nine of them.
func FormatMilliseconds(ms int64) string {
	hours, minutes, seconds, remainder := ConvertMilliseconds(ms)

	var b strings.Builder
	if hours > 0 {
		b.WriteString(strconv.FormatInt(hours, 10))
		b.WriteByte(':')
	}

	if hours > 0 || minutes > 9 {
		b.WriteString(padTwo(minutes))
	} else {
		b.WriteString(strconv.FormatInt(minutes, 10))
	}
	b.WriteByte(':')

	b.WriteString(padTwo(seconds))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(remainder/100, 10))

	return b.String()
}

// ToMilliseconds adds up a duration given in components
func ToMilliseconds(hours, minutes, seconds, milliseconds int) int64 {
	return int64(hours*3600+minutes*60+seconds)*msPerSecond + int64(milliseconds)
}

func padTwo(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
