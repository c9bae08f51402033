package calculation

import (
	"testing"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCompoundGrowth(t *testing.T) {
	trajectory, err := ProjectCompoundGrowth(dec("100"), dec("10"), 3)
	require.NoError(t, err)

	expected := []string{"110", "121", "133.1"}
	require.Len(t, trajectory, 3)
	for i, want := range expected {
		assert.Equal(t, i+1, trajectory[i].Period)
		assert.True(t, trajectory[i].Value.Equal(dec(want)), "year %d: expected %s, got %s", i+1, want, trajectory[i].Value)
	}
}

// There is no year-0 point, unlike the savings projections
func TestProjectCompoundGrowth_StartsAtPeriodOne(t *testing.T) {
	for _, years := range []int{1, 10, 40} {
		trajectory, err := ProjectCompoundGrowth(dec("250000"), dec("2"), years)
		require.NoError(t, err)
		assert.Len(t, trajectory, years)
		assert.Equal(t, 1, trajectory[0].Period)
		assert.True(t, trajectory[0].Value.Equal(dec("255000")))
	}
}

func TestProjectCompoundGrowth_ZeroRate(t *testing.T) {
	trajectory, err := ProjectCompoundGrowth(dec("5000"), decimal.Zero, 4)
	require.NoError(t, err)
	for _, p := range trajectory {
		assert.True(t, p.Value.Equal(dec("5000")))
	}
}

func TestProjectCompoundGrowth_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		rate    string
		years   int
	}{
		{"zero years", "100", "5", 0},
		{"negative years", "100", "5", -1},
		{"negative initial", "-100", "5", 3},
		{"negative rate", "100", "-5", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trajectory, err := ProjectCompoundGrowth(dec(tt.initial), dec(tt.rate), tt.years)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, trajectory)
		})
	}
}

func TestToRealValues(t *testing.T) {
	nominal := domain.Trajectory{
		{Period: 0, Value: dec("100")},
		{Period: 1, Value: dec("102")},
		{Period: 2, Value: dec("104.04")},
	}

	realValues, err := ToRealValues(nominal, dec("2"))
	require.NoError(t, err)
	require.Len(t, realValues, 3)
	for i, p := range realValues {
		assert.Equal(t, i, p.Period)
		assert.True(t, p.Value.Equal(dec("100")), "period %d: got %s", i, p.Value)
	}
}

func TestToRealValues_ZeroInflationIsIdentity(t *testing.T) {
	params := baseProjection()
	params.TargetAge = 70
	invested, err := ProjectInvestedSavings(params)
	require.NoError(t, err)

	realValues, err := ToRealValues(invested, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, invested, realValues)

	// The result is a copy
	realValues[1].Value = decimal.Zero
	assert.False(t, invested[1].Value.IsZero())
}

func TestToRealValues_GrowthTrajectory(t *testing.T) {
	// Discounting uses the period, so a trajectory starting at period 1 is
	// discounted by one full year at its first point
	growth, err := ProjectCompoundGrowth(dec("1000"), dec("3"), 5)
	require.NoError(t, err)

	realValues, err := ToRealValues(growth, dec("3"))
	require.NoError(t, err)
	assert.Len(t, realValues, 5)
	for _, p := range realValues {
		assert.InDelta(t, 1000, p.Value.InexactFloat64(), 1e-6)
	}
}

func TestToRealValues_RejectsNegativeRate(t *testing.T) {
	realValues, err := ToRealValues(domain.Trajectory{{Period: 0, Value: dec("1")}}, dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Nil(t, realValues)
}
