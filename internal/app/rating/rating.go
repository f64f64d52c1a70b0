package rating

import (
	"math"
	"strconv"

	"storerating/internal/app/apperr"
)

const (
	MinValue = 1
	MaxValue = 5
)

// ValidateValue accepts whole star values in [MinValue, MaxValue].
func ValidateValue(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < MinValue || v > MaxValue {
		return 0, apperr.Validation("Rating must be an integer between 1 and 5")
	}
	return int(v), nil
}

// Average returns the arithmetic mean of values, or nil when there are none.
func Average(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	return &avg
}

// Format renders an average with two decimals, nil stays nil.
func Format(avg *float64) *string {
	if avg == nil {
		return nil
	}
	s := strconv.FormatFloat(*avg, 'f', 2, 64)
	return &s
}
