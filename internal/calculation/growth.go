package calculation

import (
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectCompoundGrowth returns initial x (1 + rate/100)^t for t = 1..years.
// Unlike the savings projections there is no period-0 point.
func ProjectCompoundGrowth(initialValue, annualRate decimal.Decimal, years int) (domain.Trajectory, error) {
	if initialValue.IsNegative() {
		return nil, invalidParameter("initial_value", "cannot be negative")
	}
	if annualRate.IsNegative() {
		return nil, invalidParameter("annual_rate", "cannot be negative")
	}
	if years < 1 {
		return nil, invalidParameter("years", "must be at least 1")
	}

	growthFactor := one.Add(annualRate.Div(hundred))
	trajectory := make(domain.Trajectory, years)
	for t := 1; t <= years; t++ {
		value := initialValue.Mul(growthFactor.Pow(decimal.NewFromInt(int64(t))))
		trajectory[t-1] = domain.Point{Period: t, Value: value.Round(balanceScale)}
	}
	return trajectory, nil
}
