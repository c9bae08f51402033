package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/financepro/planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
// Columns that do not apply to a scenario type are left empty.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Type", "Scenario", "Periods", "FinalValue", "FinalRealValue", "WithoutInvesting", "YearsSavingsLast", "MonthlyPayment", "TotalInterest", "TotalPaid", "MonthsSaved", "InterestSaved", "PropertyValue", "CrossoverYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	retirement := append([]domain.RetirementProjection(nil), report.Retirement...)
	sort.Slice(retirement, func(i, j int) bool { return retirement[i].Name < retirement[j].Name })
	for _, rp := range retirement {
		years := ""
		if rp.YearsSavingsLast != nil {
			years = rp.YearsSavingsLast.StringFixed(2)
		}
		row := []string{
			"retirement", rp.Name,
			intToString(rp.Parameters.Years()),
			rp.SavingsAtTarget.StringFixed(2),
			rp.Real.Final().StringFixed(2),
			rp.NonInvested.Final().StringFixed(2),
			years,
			"", "", "", "", "", "", "",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	loans := append([]domain.LoanReport(nil), report.Loans...)
	sort.Slice(loans, func(i, j int) bool { return loans[i].Name < loans[j].Name })
	for _, lr := range loans {
		s := lr.Summary
		row := []string{
			"loan", lr.Name,
			intToString(s.MonthsToRepay),
			lr.Schedule.Final().Balance.StringFixed(2),
			"", "", "",
			lr.Schedule.MonthlyPayment.StringFixed(2),
			s.TotalInterest.StringFixed(2),
			s.TotalPaid.StringFixed(2),
			intToString(s.MonthsSaved),
			s.InterestSaved.StringFixed(2),
			"", "",
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	planner := append([]domain.PlannerProjection(nil), report.Planner...)
	sort.Slice(planner, func(i, j int) bool { return planner[i].Name < planner[j].Name })
	for _, pp := range planner {
		crossover := ""
		if pp.InvestmentOvertakesProperty != nil {
			crossover = pp.InvestmentOvertakesProperty.At().StringFixed(2)
		}
		row := []string{
			"planner", pp.Name,
			intToString(pp.Parameters.Years),
			pp.Investment.Final().StringFixed(2),
			"", "", "", "", "", "", "", "",
			pp.Property.Final().StringFixed(2),
			crossover,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
