package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a rupee amount. Pay scales are whole rupees; fractional values only
// appear transiently while DA is applied.
type Money struct {
	decimal.Decimal
}

var groupingPrinter = message.NewPrinter(language.English)

// NewMoney creates a Money from a whole-rupee amount
func NewMoney(rupees int64) Money {
	return Money{decimal.NewFromInt(rupees)}
}

// NewMoneyFromDecimal creates a Money from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses a Money amount
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundRupee rounds to whole rupees, half away from zero.
func (m Money) RoundRupee() Money {
	return Money{m.Decimal.Round(0)}
}

// WithDA returns the amount grossed up by a dearness allowance rate (0.13 = 13%).
func (m Money) WithDA(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Add(rate))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain whole-rupee representation.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Grouped renders the rounded amount with thousands separators ("123,456").
func (m Money) Grouped() string {
	return groupingPrinter.Sprintf("%d", m.RoundRupee().Decimal.IntPart())
}

// Format renders the amount with the rupee sign.
func (m Money) Format() string {
	return "₹ " + m.Grouped()
}

// FormatPlain renders the amount with an ASCII currency prefix for surfaces without
// the rupee glyph.
func (m Money) FormatPlain() string {
	return "Rs. " + m.Grouped()
}
