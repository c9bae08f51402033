package output

import "github.com/financepro/planner/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a report
// carries none of its own.
var DefaultAssumptions = []string{
	"Rates are annual percentages; savings compound monthly",
	"Taxes apply to investment returns only, never to contributions",
	"Real values are expressed in today's money",
	"Loan payments are fixed annuity payments; extra payments reduce principal directly",
	"Property appreciates 2.0% per year unless stated otherwise",
}

func reportAssumptions(report *domain.Report) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
