package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/financepro/planner/internal/domain"
)

// ConsoleFormatter renders the report as lipgloss tables for the terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(renderTitle("FINANCIAL PROJECTION REPORT"))
	buf.WriteString("\n")
	if !report.GeneratedAt.IsZero() {
		buf.WriteString(mutedStyle.Render("  Generated " + report.GeneratedAt.Format("2006-01-02 15:04")))
		buf.WriteString("\n")
	}
	buf.WriteString("\n")

	if report.IsEmpty() {
		buf.WriteString(warnStyle.Render("  No scenarios to report"))
		buf.WriteString("\n")
		return buf.Bytes(), nil
	}

	for _, rp := range report.Retirement {
		writeRetirement(&buf, &rp)
	}
	for _, lr := range report.Loans {
		writeLoan(&buf, &lr)
	}
	for _, pp := range report.Planner {
		writePlanner(&buf, &pp)
	}

	writeHighlights(&buf, AnalyzeReport(report))

	buf.WriteString(headerStyle.Render("  Assumptions"))
	buf.WriteString("\n")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "  %s %s\n", dimStyle.Render("•"), mutedStyle.Render(a))
	}
	return buf.Bytes(), nil
}

func writeRetirement(buf *bytes.Buffer, rp *domain.RetirementProjection) {
	t := consoleTable{
		Title:   "Retirement: " + rp.Name,
		Headers: []string{"Year", "Age", "Invested", "Without investing", "Real value"},
	}
	for i, p := range rp.Invested {
		row := []string{strconv.Itoa(p.Period), "", FormatCurrency(p.Value), "", ""}
		if i < len(rp.Ages) {
			row[1] = strconv.Itoa(rp.Ages[i])
		}
		if v, ok := rp.NonInvested.ValueAt(p.Period); ok {
			row[3] = FormatCurrency(v)
		}
		if v, ok := rp.Real.ValueAt(p.Period); ok {
			row[4] = FormatCurrency(v)
		}
		t.Rows = append(t.Rows, row)
	}
	buf.WriteString(renderTable(t))

	params := rp.Parameters
	buf.WriteString(renderKeyValue(fmt.Sprintf("Savings at age %d", params.TargetAge), goodStyle.Render(FormatCurrency(rp.SavingsAtTarget))))
	buf.WriteString(renderKeyValue("Growth from investing", FormatCurrency(rp.GrowthFromInvesting())))
	buf.WriteString(renderKeyValue("In today's money", FormatCurrency(rp.Real.Final())))
	if rp.YearsSavingsLast != nil {
		buf.WriteString(renderKeyValue(fmt.Sprintf("Lasts at %s a month", FormatCurrency(params.MonthlyExpenses)), FormatYears(*rp.YearsSavingsLast)))
	}
	buf.WriteString(renderKeyValue("Trend", renderSparkline(floats(rp.Invested))))
	buf.WriteString("\n")
}

func writeLoan(buf *bytes.Buffer, lr *domain.LoanReport) {
	t := consoleTable{
		Title:   "Loan: " + lr.Name,
		Headers: []string{"Month", "Principal paid", "Interest", "Balance", "Cumulative interest"},
	}
	for _, row := range lr.Schedule.YearEndRows() {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(row.Month),
			FormatCurrency(row.Principal.Add(row.ExtraPayment)),
			FormatCurrency(row.Interest),
			FormatCurrency(row.Balance),
			FormatCurrency(row.CumulativeInterest),
		})
	}
	buf.WriteString(renderTable(t))

	s := lr.Summary
	buf.WriteString(renderKeyValue("Monthly payment", FormatCurrency(lr.Schedule.MonthlyPayment)))
	if lr.Parameters.MonthlyExtraPayment.IsPositive() {
		buf.WriteString(renderKeyValue("Extra payment", FormatCurrency(lr.Parameters.MonthlyExtraPayment)))
	}
	buf.WriteString(renderKeyValue("Repaid in", fmt.Sprintf("%d months", s.MonthsToRepay)))
	buf.WriteString(renderKeyValue("Total interest", FormatCurrency(s.TotalInterest)))
	buf.WriteString(renderKeyValue("Total paid", FormatCurrency(s.TotalPaid)))
	if s.MonthsSaved > 0 {
		buf.WriteString(renderKeyValue("Saved by paying extra",
			goodStyle.Render(fmt.Sprintf("%d months, %s interest", s.MonthsSaved, FormatCurrency(s.InterestSaved)))))
	}
	buf.WriteString("\n")
}

func writePlanner(buf *bytes.Buffer, pp *domain.PlannerProjection) {
	t := consoleTable{
		Title:   "Planner: " + pp.Name,
		Headers: []string{"Year", "Investment", "Property", "Inflation benchmark"},
	}
	for i, p := range pp.Investment {
		row := []string{strconv.Itoa(p.Period), FormatCurrency(p.Value), "", ""}
		if i < len(pp.Property) {
			row[2] = FormatCurrency(pp.Property[i].Value)
		}
		if i < len(pp.Benchmark) {
			row[3] = FormatCurrency(pp.Benchmark[i].Value)
		}
		t.Rows = append(t.Rows, row)
	}
	buf.WriteString(renderTable(t))

	if c := pp.InvestmentOvertakesProperty; c != nil {
		buf.WriteString(renderKeyValue("Investment overtakes property",
			goodStyle.Render(fmt.Sprintf("after %s at %s", FormatYears(c.At()), FormatCurrency(c.Value)))))
	} else {
		buf.WriteString(renderKeyValue("Investment overtakes property", warnStyle.Render("not within "+strconv.Itoa(pp.Parameters.Years)+" years")))
	}
	buf.WriteString("\n")
}

func writeHighlights(buf *bytes.Buffer, h Highlights) {
	lines := []struct {
		label string
		hl    Highlight
		value string
	}{
		{"Most saved", h.MostSaved, FormatCurrency(h.MostSaved.Amount)},
		{"Most growth from investing", h.MostGrowth, FormatCurrency(h.MostGrowth.Amount)},
		{"Cheapest loan", h.CheapestLoan, FormatCurrency(h.CheapestLoan.Amount) + " interest"},
		{"Best extra payment", h.BestExtraPayment, FormatCurrency(h.BestExtraPayment.Amount) + " saved"},
		{"Earliest overtake", h.EarliestOvertake, FormatYears(h.EarliestOvertake.Amount)},
	}

	var body bytes.Buffer
	for _, l := range lines {
		if l.hl.Found() {
			body.WriteString(renderKeyValue(l.label, l.hl.ScenarioName+" ("+l.value+")"))
		}
	}
	if body.Len() == 0 {
		return
	}
	buf.WriteString(headerStyle.Render("  Highlights"))
	buf.WriteString("\n")
	buf.Write(body.Bytes())
	buf.WriteString("\n")
}

func floats(t domain.Trajectory) []float64 {
	values := make([]float64, t.Len())
	for i, v := range t.Values() {
		values[i] = v.InexactFloat64()
	}
	return values
}
