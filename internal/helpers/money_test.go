package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToRentStep(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "rounds up to the next step", amount: 123417.82, expected: 123500},
		{name: "rounds down to the previous step", amount: 123200, expected: 123000},
		{name: "exact multiple is unchanged", amount: 117000, expected: 117000},
		{name: "halfway rounds away from zero", amount: 123250, expected: 123500},
		{name: "zero stays zero", amount: 0, expected: 0},
		{name: "small amounts collapse to zero", amount: 180, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundToRentStep(tt.amount))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 16.99, Round2(16.985856))
	assert.Equal(t, 2.5, Round2(2.5))
	assert.Equal(t, -3.33, Round2(-3.3333))
	assert.Equal(t, 0.0, Round2(0.0049))
}

func TestFormatARS(t *testing.T) {
	// Argentine convention: dot for thousands, comma for decimals.
	assert.Equal(t, "$123.500,00", FormatARS(123500))
	assert.Equal(t, "$98.750,50", FormatARS(98750.50))
	assert.Equal(t, "$1.250.000,00", FormatARS(1250000))
	assert.Equal(t, "$0,00", FormatARS(0))
}
