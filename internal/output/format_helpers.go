package output

import (
	"strconv"

	money "github.com/financepro/planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

var currencySymbol = money.DefaultSymbol

// SetCurrencySymbol changes the symbol used by FormatCurrency.
func SetCurrencySymbol(symbol string) { currencySymbol = symbol }

// FormatCurrency formats a decimal as currency with 2 decimals and thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWithSymbol(currencySymbol)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatYears formats a fractional number of years, e.g. "12.4 years".
func FormatYears(years decimal.Decimal) string { return years.StringFixed(1) + " years" }

func intToString(i int) string { return strconv.Itoa(i) }
