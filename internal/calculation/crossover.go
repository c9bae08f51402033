package calculation

import (
	"fmt"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// FindCrossover finds the first period at which trajectory a moves ahead of
// trajectory b after not being ahead at the previous period. The fraction of
// the period where both are equal is found by linear interpolation of the
// difference a - b. Trajectories must cover the same periods, compared up to
// the shorter of the two. If a never overtakes b, returns nil, nil.
func FindCrossover(a, b domain.Trajectory) (*domain.Crossover, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, fmt.Errorf("one or both trajectories are empty")
	}

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i].Period != b[i].Period {
			return nil, fmt.Errorf("trajectories are not aligned: period %d vs %d at index %d", a[i].Period, b[i].Period, i)
		}
	}

	for i := 1; i < n; i++ {
		prevDiff := a[i-1].Value.Sub(b[i-1].Value)
		currDiff := a[i].Value.Sub(b[i].Value)

		if prevDiff.IsPositive() || !currDiff.IsPositive() {
			continue
		}

		// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0
		t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
		if t.IsNegative() {
			t = decimal.Zero
		} else if t.GreaterThan(one) {
			t = one
		}

		step := a[i].Value.Sub(a[i-1].Value)
		return &domain.Crossover{
			Period:   a[i].Period,
			Fraction: t,
			Value:    a[i-1].Value.Add(step.Mul(t)),
		}, nil
	}

	return nil, nil
}
