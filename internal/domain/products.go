package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// FinancialProduct is a preset expected annual return for a class of product
type FinancialProduct struct {
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	ExpectedReturn decimal.Decimal `json:"expected_return"`
}

var products = map[string]FinancialProduct{
	"etf":               {Key: "etf", Name: "ETF", ExpectedReturn: decimal.NewFromFloat(6.0)},
	"aggressive_stocks": {Key: "aggressive_stocks", Name: "Aggressive Stocks", ExpectedReturn: decimal.NewFromFloat(10.0)},
	"bonds":             {Key: "bonds", Name: "Bonds", ExpectedReturn: decimal.NewFromFloat(3.0)},
	"deposit_accounts":  {Key: "deposit_accounts", Name: "Deposit Accounts", ExpectedReturn: decimal.NewFromFloat(1.5)},
}

// LookupProduct finds a product by key. Keys are matched case-insensitively
// and spaces or dashes are accepted in place of underscores.
func LookupProduct(key string) (FinancialProduct, bool) {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.NewReplacer(" ", "_", "-", "_").Replace(k)
	p, ok := products[k]
	return p, ok
}

// Products returns every preset ordered by expected return, highest first
func Products() []FinancialProduct {
	list := make([]FinancialProduct, 0, len(products))
	for _, p := range products {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ExpectedReturn.GreaterThan(list[j].ExpectedReturn)
	})
	return list
}
