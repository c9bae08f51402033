//go:build unit

package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "€1,234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatCurrency_CustomSymbol(t *testing.T) {
	SetCurrencySymbol("$")
	defer SetCurrencySymbol("€")

	if got, want := FormatCurrency(decimal.NewFromInt(-2500000)), "-$2,500,000.00"; got != want {
		t.Errorf("FormatCurrency = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatYears(t *testing.T) {
	if got, want := FormatYears(decimal.NewFromFloat(8.4666)), "8.5 years"; got != want {
		t.Errorf("FormatYears = %q, want %q", got, want)
	}
}
