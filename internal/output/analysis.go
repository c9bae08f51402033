package output

import (
	"sort"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Highlight names the scenario that stands out on one measure.
type Highlight struct {
	ScenarioName string
	Amount       decimal.Decimal
}

// Found reports whether any scenario was selected.
func (h Highlight) Found() bool { return h.ScenarioName != "" }

// Highlights collects the stand-out scenarios of a report.
type Highlights struct {
	// Retirement scenario with the largest balance at the target age
	MostSaved Highlight
	// Retirement scenario gaining the most from investing
	MostGrowth Highlight
	// Loan with the lowest total interest
	CheapestLoan Highlight
	// Loan whose extra payment saves the most interest
	BestExtraPayment Highlight
	// Planner scenario where investing overtakes property earliest; Amount is the crossover period
	EarliestOvertake Highlight
}

// AnalyzeReport determines the stand-out scenarios of a report.
// Extracted from the console and html formatters for testability.
func AnalyzeReport(report *domain.Report) Highlights {
	var h Highlights

	retirement := append([]domain.RetirementProjection(nil), report.Retirement...)
	if len(retirement) > 0 {
		sort.SliceStable(retirement, func(i, j int) bool {
			return retirement[i].SavingsAtTarget.GreaterThan(retirement[j].SavingsAtTarget)
		})
		h.MostSaved = Highlight{retirement[0].Name, retirement[0].SavingsAtTarget}

		sort.SliceStable(retirement, func(i, j int) bool {
			return retirement[i].GrowthFromInvesting().GreaterThan(retirement[j].GrowthFromInvesting())
		})
		h.MostGrowth = Highlight{retirement[0].Name, retirement[0].GrowthFromInvesting()}
	}

	loans := append([]domain.LoanReport(nil), report.Loans...)
	if len(loans) > 0 {
		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].Summary.TotalInterest.LessThan(loans[j].Summary.TotalInterest)
		})
		h.CheapestLoan = Highlight{loans[0].Name, loans[0].Summary.TotalInterest}

		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].Summary.InterestSaved.GreaterThan(loans[j].Summary.InterestSaved)
		})
		if loans[0].Summary.InterestSaved.IsPositive() {
			h.BestExtraPayment = Highlight{loans[0].Name, loans[0].Summary.InterestSaved}
		}
	}

	for _, p := range report.Planner {
		c := p.InvestmentOvertakesProperty
		if c == nil {
			continue
		}
		if !h.EarliestOvertake.Found() || c.At().LessThan(h.EarliestOvertake.Amount) {
			h.EarliestOvertake = Highlight{p.Name, c.At()}
		}
	}

	return h
}
