package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of fractional digits an amount may carry (minor units).
const AmountPlaces int32 = 2

// ParseAmount converts decimal text such as "12.50" into an amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid("amount", s, ErrInvalidAmount)
	}
	if err := checkAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// AmountFromFloat converts a float at the boundary using its shortest decimal
// representation, so 12.5 becomes exactly 12.5 rather than its binary approximation.
func AmountFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, invalid("amount", strconv.FormatFloat(f, 'g', -1, 64), ErrInvalidAmount)
	}
	d := decimal.NewFromFloat(f)
	if err := checkAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// MustAmount is like ParseAmount but panics on error. Intended for literals.
func MustAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return d
}

func checkAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return invalid("amount", d.String(), ErrNegativeAmount)
	}
	if !d.Equal(d.Truncate(AmountPlaces)) {
		return invalid("amount", d.String(), ErrAmountPrecision)
	}
	return nil
}
