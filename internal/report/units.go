package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// Units converts distances between meters and the user's display unit
type Units struct {
	unit string
}

// NewUnits creates a Units helper for "m", "km" or "mi". Anything else
// falls back to meters.
func NewUnits(unit string) Units {
	switch unit {
	case "km", "mi":
		return Units{unit: unit}
	default:
		return Units{unit: "m"}
	}
}

// Label returns the short unit label
func (u Units) Label() string {
	return u.unit
}

func (u Units) factor() float64 {
	switch u.unit {
	case "km":
		return metersPerKm
	case "mi":
		return metersPerMile
	default:
		return 1
	}
}

// FormatDistance formats a distance in meters in the display unit, e.g.
// "2,000 m", "5 km" or "3.11 mi"
func (u Units) FormatDistance(meters float64) string {
	return u.FormatDistanceValue(meters) + " " + u.unit
}

// FormatDistanceValue returns just the numeric distance value (no unit label)
func (u Units) FormatDistanceValue(meters float64) string {
	if u.unit == "m" {
		return humanize.Commaf(math.Round(meters*10) / 10)
	}
	return humanize.FtoaWithDigits(math.Round(meters/u.factor()*100)/100, 2)
}

// ParseDistance reads a distance typed in the display unit and returns it in
// meters. Commas and a trailing unit label are accepted.
func (u Units) ParseDistance(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimSpace(strings.TrimSuffix(s, u.unit))
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid distance %q", input)
	}
	return v * u.factor(), nil
}
