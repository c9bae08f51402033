package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Point is a single periodic snapshot of a monetary value
type Point struct {
	Period int             `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// Trajectory is an ordered sequence of yearly snapshots. Periods increase by
// exactly one from the first point.
type Trajectory []Point

// Len returns the number of points in the trajectory
func (t Trajectory) Len() int { return len(t) }

// Values returns the values of the trajectory in period order
func (t Trajectory) Values() []decimal.Decimal {
	values := make([]decimal.Decimal, len(t))
	for i, p := range t {
		values[i] = p.Value
	}
	return values
}

// Final returns the value of the last point, or zero for an empty trajectory
func (t Trajectory) Final() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Value
}

// ValueAt returns the value recorded for the given period
func (t Trajectory) ValueAt(period int) (decimal.Decimal, bool) {
	for _, p := range t {
		if p.Period == period {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// ProjectionParameters holds the inputs of a savings projection.
// Rates are percentages (0-100), monetary values are plain currency amounts.
type ProjectionParameters struct {
	CurrentAge          int             `yaml:"current_age" json:"current_age"`
	TargetAge           int             `yaml:"target_age" json:"target_age"`
	InitialAmount       decimal.Decimal `yaml:"initial_amount" json:"initial_amount"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualLumpSum       decimal.Decimal `yaml:"annual_lump_sum" json:"annual_lump_sum"`
	AnnualReturnRate    decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	TaxRate             decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
	InflationRate       decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	// Expected monthly spending once the target age is reached
	MonthlyExpenses decimal.Decimal `yaml:"monthly_expenses" json:"monthly_expenses"`
}

// Years returns the length of the savings horizon
func (p ProjectionParameters) Years() int {
	return p.TargetAge - p.CurrentAge
}

// RetirementProjection bundles every trajectory shown for a retirement scenario
type RetirementProjection struct {
	Name        string               `json:"name"`
	Parameters  ProjectionParameters `json:"parameters"`
	Ages        []int                `json:"ages"`
	Invested    Trajectory           `json:"invested"`
	NonInvested Trajectory           `json:"non_invested"`
	Real        Trajectory           `json:"real"`

	// Balance at the target age and the number of years it covers the
	// expected expenses. YearsSavingsLast is nil when no expenses were given.
	SavingsAtTarget  decimal.Decimal  `json:"savings_at_target"`
	YearsSavingsLast *decimal.Decimal `json:"years_savings_last"`
}

// GrowthFromInvesting returns how much more the invested path holds at the
// target age compared with simply saving the same contributions
func (rp *RetirementProjection) GrowthFromInvesting() decimal.Decimal {
	return rp.Invested.Final().Sub(rp.NonInvested.Final())
}

// PlannerParameters holds the inputs of the investment versus property planner
type PlannerParameters struct {
	InitialCapital     decimal.Decimal `yaml:"initial_capital" json:"initial_capital"`
	InvestmentRate     decimal.Decimal `yaml:"investment_rate" json:"investment_rate"`
	PropertyPrice      decimal.Decimal `yaml:"property_price" json:"property_price"`
	PropertyGrowthRate decimal.Decimal `yaml:"property_growth_rate" json:"property_growth_rate"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	Years              int             `yaml:"years" json:"years"`
}

// DefaultPropertyGrowthRate is the yearly appreciation assumed for property
var DefaultPropertyGrowthRate = decimal.NewFromFloat(2.0)

// PlannerProjection holds the planner trajectories. Periods start at 1.
type PlannerProjection struct {
	Name       string            `json:"name"`
	Parameters PlannerParameters `json:"parameters"`
	Investment Trajectory        `json:"investment"`
	Property   Trajectory        `json:"property"`
	Benchmark  Trajectory        `json:"benchmark"`

	// When the investment value first overtakes the property value, if ever
	InvestmentOvertakesProperty *Crossover `json:"investment_overtakes_property,omitempty"`
}

// Crossover describes where one trajectory overtakes another
type Crossover struct {
	// Period at the end of which the leading trajectory is ahead
	Period int `json:"period"`

	// Fraction [0..1) of the period, measured from the previous period, where
	// the two values are equal under linear interpolation
	Fraction decimal.Decimal `json:"fraction"`

	// Interpolated value of the overtaking trajectory at the crossover
	Value decimal.Decimal `json:"value"`
}

// At returns the fractional period where the crossover happens, e.g. 12.4
func (c *Crossover) At() decimal.Decimal {
	return decimal.NewFromInt(int64(c.Period - 1)).Add(c.Fraction)
}

// Report is the full result of running a scenario file
type Report struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Retirement  []RetirementProjection `json:"retirement"`
	Loans       []LoanReport           `json:"loans"`
	Planner     []PlannerProjection    `json:"planner"`
	Assumptions []string               `json:"assumptions"`
}

// IsEmpty reports whether the report carries no scenario results
func (r *Report) IsEmpty() bool {
	return len(r.Retirement) == 0 && len(r.Loans) == 0 && len(r.Planner) == 0
}
