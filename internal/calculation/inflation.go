package calculation

import (
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// ToRealValues discounts every value by (1 + inflation/100)^period, giving its
// purchasing power in today's money. Period 0 is left untouched and a zero
// rate returns an exact copy of the input.
//
// The exponent is the point's Period, not its index. This is deliberate: a
// growth trajectory starting at period 1 has its first point discounted by
// one year, so every point is valued at the time it is reached.
func ToRealValues(trajectory domain.Trajectory, inflationRate decimal.Decimal) (domain.Trajectory, error) {
	if inflationRate.IsNegative() {
		return nil, invalidParameter("inflation_rate", "cannot be negative")
	}

	realValues := make(domain.Trajectory, len(trajectory))
	if inflationRate.IsZero() {
		copy(realValues, trajectory)
		return realValues, nil
	}

	inflationFactor := one.Add(inflationRate.Div(hundred))
	for i, p := range trajectory {
		if p.Period == 0 {
			realValues[i] = p
			continue
		}
		discount := inflationFactor.Pow(decimal.NewFromInt(int64(p.Period)))
		realValues[i] = domain.Point{Period: p.Period, Value: p.Value.Div(discount)}
	}
	return realValues, nil
}
