package rating

import (
	"errors"
	"math"
	"testing"

	"storerating/internal/app/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValue(t *testing.T) {
	for _, v := range []float64{1, 2, 3, 4, 5} {
		got, err := ValidateValue(v)
		require.NoError(t, err)
		assert.Equal(t, int(v), got)
	}

	for _, v := range []float64{0, 6, -1, 3.5, 4.999, math.NaN(), math.Inf(1)} {
		_, err := ValidateValue(v)
		assert.Truef(t, errors.Is(err, apperr.ErrValidation), "value %v must be rejected", v)
	}
}

func TestAverage(t *testing.T) {
	assert.Nil(t, Average(nil))
	assert.Nil(t, Average([]int{}))

	tests := []struct {
		values []int
		want   float64
	}{
		{[]int{5}, 5},
		{[]int{5, 3}, 4},
		{[]int{1, 2, 2}, 5.0 / 3.0},
		{[]int{4, 4, 5, 5}, 4.5},
	}
	for _, tt := range tests {
		got := Average(tt.values)
		require.NotNil(t, got)
		sum := 0
		for _, v := range tt.values {
			sum += v
		}
		assert.InDelta(t, float64(sum)/float64(len(tt.values)), *got, 1e-9)
		assert.InDelta(t, tt.want, *got, 1e-9)
	}
}

func TestFormat(t *testing.T) {
	assert.Nil(t, Format(nil))
	assert.Equal(t, "4.50", *Format(Average([]int{4, 5})))
	assert.Equal(t, "1.67", *Format(Average([]int{1, 2, 2})))
	assert.Equal(t, "3.00", *Format(Average([]int{3})))
}
