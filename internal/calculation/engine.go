package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// nowFunc stamps generated reports; tests pin it with SetNowFunc
var nowFunc = time.Now

// SetNowFunc replaces the clock used for Report.GeneratedAt.
func SetNowFunc(f func() time.Time) { nowFunc = f }

// CalculationEngine orchestrates the projection calculations and bundles the
// results of a scenario file into a report
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunRetirement projects a savings plan with and without investment returns
// and in today's money
func (ce *CalculationEngine) RunRetirement(name string, params domain.ProjectionParameters) (*domain.RetirementProjection, error) {
	ce.Logger.Debugf("retirement %q: ages %d-%d, return %s%%, tax %s%%", name, params.CurrentAge, params.TargetAge, params.AnnualReturnRate, params.TaxRate)

	invested, err := ProjectInvestedSavings(params)
	if err != nil {
		return nil, err
	}
	nonInvested, err := ProjectNonInvestedSavings(params)
	if err != nil {
		return nil, err
	}
	realValues, err := ToRealValues(invested, params.InflationRate)
	if err != nil {
		return nil, err
	}

	ages := make([]int, 0, invested.Len())
	for _, p := range invested {
		ages = append(ages, params.CurrentAge+p.Period)
	}

	projection := &domain.RetirementProjection{
		Name:            name,
		Parameters:      params,
		Ages:            ages,
		Invested:        invested,
		NonInvested:     nonInvested,
		Real:            realValues,
		SavingsAtTarget: invested.Final(),
	}

	if params.MonthlyExpenses.IsPositive() {
		yearly := params.MonthlyExpenses.Mul(twelve)
		years := invested.Final().Div(yearly)
		projection.YearsSavingsLast = &years
	}

	ce.Logger.Infof("retirement %q: %s saved by age %d", name, projection.SavingsAtTarget.StringFixed(2), params.TargetAge)
	return projection, nil
}

// RunLoan amortizes a loan. When an extra payment is set the same loan is also
// amortized without it so the summary can show what the extra payment saves.
func (ce *CalculationEngine) RunLoan(name string, params domain.LoanParameters) (*domain.LoanReport, error) {
	schedule, err := Amortize(params)
	if err != nil {
		return nil, err
	}

	var baseline *domain.AmortizationSchedule
	if params.MonthlyExtraPayment.IsPositive() {
		withoutExtra := params
		withoutExtra.MonthlyExtraPayment = decimal.Zero
		base, err := Amortize(withoutExtra)
		if err != nil {
			return nil, err
		}
		baseline = &base
	}

	summary := SummarizeLoan(params, &schedule, baseline)
	ce.Logger.Infof("loan %q: repaid in %d months, total interest %s", name, summary.MonthsToRepay, summary.TotalInterest.StringFixed(2))
	if baseline != nil {
		ce.Logger.Debugf("loan %q: extra payment saves %d months and %s interest", name, summary.MonthsSaved, summary.InterestSaved.StringFixed(2))
	}

	return &domain.LoanReport{
		Name:       name,
		Parameters: params,
		Schedule:   schedule,
		Summary:    summary,
	}, nil
}

// RunPlanner compares investing the initial capital against the appreciation
// of a property, with the capital grown at inflation as a benchmark
func (ce *CalculationEngine) RunPlanner(name string, params domain.PlannerParameters) (*domain.PlannerProjection, error) {
	investment, err := ProjectCompoundGrowth(params.InitialCapital, params.InvestmentRate, params.Years)
	if err != nil {
		return nil, fmt.Errorf("investment: %w", err)
	}
	property, err := ProjectCompoundGrowth(params.PropertyPrice, params.PropertyGrowthRate, params.Years)
	if err != nil {
		return nil, fmt.Errorf("property: %w", err)
	}
	benchmark, err := ProjectCompoundGrowth(params.InitialCapital, params.InflationRate, params.Years)
	if err != nil {
		return nil, fmt.Errorf("inflation benchmark: %w", err)
	}

	// Growth trajectories start at period 1, so the starting values are
	// prepended to catch an overtake during the first year.
	withStart := func(start decimal.Decimal, t domain.Trajectory) domain.Trajectory {
		return append(domain.Trajectory{{Period: 0, Value: start}}, t...)
	}
	crossover, err := FindCrossover(withStart(params.InitialCapital, investment), withStart(params.PropertyPrice, property))
	if err != nil {
		return nil, err
	}

	if crossover != nil {
		ce.Logger.Infof("planner %q: investment overtakes property after %s years", name, crossover.At().StringFixed(2))
	} else {
		ce.Logger.Infof("planner %q: investment does not overtake property within %d years", name, params.Years)
	}

	return &domain.PlannerProjection{
		Name:                        name,
		Parameters:                  params,
		Investment:                  investment,
		Property:                    property,
		Benchmark:                   benchmark,
		InvestmentOvertakesProperty: crossover,
	}, nil
}

// RunScenarios runs every scenario of a configuration and returns the report
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.Report, error) {
	report := &domain.Report{
		GeneratedAt: nowFunc(),
		Assumptions: config.GenerateAssumptions(),
	}

	for _, scenario := range config.Retirement {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		params, err := scenario.ResolvedParameters()
		if err != nil {
			return nil, fmt.Errorf("retirement scenario %q: %w", scenario.Name, err)
		}
		projection, err := ce.RunRetirement(scenario.Name, params)
		if err != nil {
			return nil, fmt.Errorf("retirement scenario %q: %w", scenario.Name, err)
		}
		report.Retirement = append(report.Retirement, *projection)
	}

	for _, scenario := range config.Loans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		loan, err := ce.RunLoan(scenario.Name, scenario.Parameters)
		if err != nil {
			return nil, fmt.Errorf("loan scenario %q: %w", scenario.Name, err)
		}
		report.Loans = append(report.Loans, *loan)
	}

	for _, scenario := range config.Planner {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		planner, err := ce.RunPlanner(scenario.Name, scenario.Parameters)
		if err != nil {
			return nil, fmt.Errorf("planner scenario %q: %w", scenario.Name, err)
		}
		report.Planner = append(report.Planner, *planner)
	}

	ce.Logger.Debugf("ran %d scenarios", config.ScenarioCount())
	return report, nil
}
