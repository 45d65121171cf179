package domain

import (
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. Prices are stored as integer cents so that
// sums over listings are exact.
type Money int64

// MaxMoney is the exclusive upper bound implied by MaxPriceDigits.
const MaxMoney = Money(1_000_000_000_000)

// MoneyFromFloat converts a decimal amount (e.g. 250000.5) to cents, rounding
// half away from zero. Amounts beyond ±MaxMoney, and NaN, saturate at the
// bound so validation reports them as out of range.
func MoneyFromFloat(amount float64) Money {
	cents := math.Round(amount * 100)
	switch {
	case math.IsNaN(cents), cents >= float64(MaxMoney):
		return MaxMoney
	case cents <= -float64(MaxMoney):
		return -MaxMoney
	}
	return Money(cents)
}

// Float returns the amount in currency units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// String renders the amount as "$1,234.56".
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := strconv.FormatInt(v/100, 10)
	cents := v % 100

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	if cents < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(cents, 10))
	return b.String()
}
