// Package validation provides shared formatting and clamping helpers for
// validation errors and percentage fields.
package validation

import (
	"math"
	"strings"
)

// FormatValidValues joins string-like values for error messages.
func FormatValidValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}

// ClampPercent restricts a percentage to the [0, 100] range.
func ClampPercent(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// RoundPercent rounds a percentage to the nearest whole number for display.
func RoundPercent(value float64) int {
	return int(math.Round(ClampPercent(value)))
}
