package calculation

import (
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one           = decimal.NewFromInt(1)
	twelve        = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
	monthsPercent = decimal.NewFromInt(1200)
)

// balanceScale bounds the number of decimal places carried between periods
const balanceScale = 10

// MonthlyNetRate converts an annual return percentage and a tax percentage
// levied on returns into the net monthly growth rate as a fraction:
// annual x (1 - tax/100) / 12 / 100
func MonthlyNetRate(annualReturnRate, taxRate decimal.Decimal) decimal.Decimal {
	afterTax := one.Sub(taxRate.Div(hundred))
	return annualReturnRate.Mul(afterTax).Div(monthsPercent)
}

// ValidateProjectionParameters checks the preconditions shared by both
// savings projections
func ValidateProjectionParameters(params domain.ProjectionParameters) error {
	if params.CurrentAge < 0 {
		return invalidParameter("current_age", "cannot be negative")
	}
	if params.TargetAge <= params.CurrentAge {
		return invalidParameter("target_age", "must be greater than current_age")
	}
	nonNegative := []struct {
		field string
		value decimal.Decimal
	}{
		{"initial_amount", params.InitialAmount},
		{"monthly_contribution", params.MonthlyContribution},
		{"annual_lump_sum", params.AnnualLumpSum},
		{"annual_return_rate", params.AnnualReturnRate},
		{"tax_rate", params.TaxRate},
		{"inflation_rate", params.InflationRate},
		{"monthly_expenses", params.MonthlyExpenses},
	}
	for _, nn := range nonNegative {
		if nn.value.IsNegative() {
			return invalidParameter(nn.field, "cannot be negative")
		}
	}
	if params.TaxRate.GreaterThan(hundred) {
		return invalidParameter("tax_rate", "cannot exceed 100%")
	}
	return nil
}

// ProjectInvestedSavings simulates the balance month by month, compounding at
// the net monthly rate and adding the monthly contribution, plus the lump sum
// at the end of every 12th month. One point is returned per year, starting
// with the initial amount at period 0.
func ProjectInvestedSavings(params domain.ProjectionParameters) (domain.Trajectory, error) {
	if err := ValidateProjectionParameters(params); err != nil {
		return nil, err
	}

	years := params.Years()
	growth := one.Add(MonthlyNetRate(params.AnnualReturnRate, params.TaxRate))

	trajectory := make(domain.Trajectory, 0, years+1)
	balance := params.InitialAmount
	trajectory = append(trajectory, domain.Point{Period: 0, Value: balance})

	for month := 1; month <= years*12; month++ {
		balance = balance.Mul(growth).Add(params.MonthlyContribution)
		yearEnd := month%12 == 0
		if yearEnd {
			balance = balance.Add(params.AnnualLumpSum)
		}
		balance = balance.Round(balanceScale)
		if yearEnd {
			trajectory = append(trajectory, domain.Point{Period: month / 12, Value: balance})
		}
	}

	return trajectory, nil
}

// ProjectNonInvestedSavings applies the same contribution schedule without any
// growth: every year adds twelve monthly contributions and the lump sum.
func ProjectNonInvestedSavings(params domain.ProjectionParameters) (domain.Trajectory, error) {
	if err := ValidateProjectionParameters(params); err != nil {
		return nil, err
	}

	years := params.Years()
	yearly := params.MonthlyContribution.Mul(twelve).Add(params.AnnualLumpSum)

	trajectory := make(domain.Trajectory, 0, years+1)
	balance := params.InitialAmount
	trajectory = append(trajectory, domain.Point{Period: 0, Value: balance})
	for year := 1; year <= years; year++ {
		balance = balance.Add(yearly)
		trajectory = append(trajectory, domain.Point{Period: year, Value: balance})
	}

	return trajectory, nil
}
