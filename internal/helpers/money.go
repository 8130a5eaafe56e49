package helpers

import (
	"math"

	"github.com/Rhymond/go-money"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
)

// RoundToRentStep rounds an ARS amount to the nearest rent step (500 pesos).
// Argentine rents are quoted in round figures; a compounded 123,417.82 becomes
// 123,500.
func RoundToRentStep(amount float64) float64 {
	return math.Round(amount/constants.RentRoundingStep) * constants.RentRoundingStep
}

// Round2 rounds to two decimal places. Used for percentages shown to users.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatARS renders an amount as Argentine pesos for emails and CLI output.
func FormatARS(amount float64) string {
	cents := int64(math.Round(amount * 100))
	return money.New(cents, money.ARS).Display()
}
