package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured
const DefaultSymbol = "€"

// Money is a decimal amount that prints as currency
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// FormatWithSymbol formats the amount as e.g. "-€1,234,567.89"
func (m Money) FormatWithSymbol(symbol string) string {
	s := m.Decimal.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(GroupThousands(whole))
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// GroupThousands inserts comma separators into a string of digits.
// e.g., "1234567" -> "1,234,567"
func GroupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	remainder := len(digits) % 3
	if remainder > 0 {
		result.WriteString(digits[:remainder])
	}
	for i := remainder; i < len(digits); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(digits[i : i+3])
	}
	return result.String()
}
