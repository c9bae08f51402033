package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report with Chart.js charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"years": FormatYears,
	"periods": func(t domain.Trajectory) []int {
		periods := make([]int, len(t))
		for i, p := range t {
			periods[i] = p.Period
		}
		return periods
	},
	"values": floats,
	"deref":  func(d *decimal.Decimal) decimal.Decimal { return *d },
	"yearEnds": func(s domain.AmortizationSchedule) []domain.AmortizationRow {
		return s.YearEndRows()
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer

	balances := make([][]float64, len(report.Loans))
	months := make([][]int, len(report.Loans))
	for i, lr := range report.Loans {
		for _, row := range lr.Schedule.YearEndRows() {
			months[i] = append(months[i], row.Month)
			balances[i] = append(balances[i], row.Balance.InexactFloat64())
		}
	}

	data := struct {
		*domain.Report
		Highlights   Highlights
		Assumptions  []string
		LoanMonths   [][]int
		LoanBalances [][]float64
	}{report, AnalyzeReport(report), reportAssumptions(report), months, balances}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
