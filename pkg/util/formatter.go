package util

import (
	"fmt"
	"math"
)

// FormatRate prints a rate coefficient in fixed-width scientific notation,
// e.g. "2.590e-13".
func FormatRate(value float64) string {
	return fmt.Sprintf("%10.4e", value)
}

func FormatTemperature(temp float64) string {
	switch {
	case temp >= 1e6:
		return fmt.Sprintf("%8.3f MK", temp/1e6)
	case temp >= 1e3:
		return fmt.Sprintf("%8.3f kK", temp/1e3)
	default:
		return fmt.Sprintf("%8.3f K ", temp)
	}
}

// FormatValue prints a general quantity with a unit, switching to
// scientific notation outside the comfortable fixed-point range.
func FormatValue(value float64, unit string) string {
	absValue := math.Abs(value)
	if value != 0 && (absValue >= 1e4 || absValue < 1e-3) {
		return fmt.Sprintf("%.3e %s", value, unit)
	}
	return fmt.Sprintf("%.3f %s", value, unit)
}
