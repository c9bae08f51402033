package output

import (
	"fmt"

	"github.com/financepro/planner/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSXFormatter exports the report as an Excel workbook with one sheet per
// scenario type and a summary sheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

const (
	summarySheet    = "Summary"
	savingsSheet    = "Savings"
	loansSheet      = "Loans"
	plannerSheet    = "Planner"
	numFmtThousands = 4 // #,##0.00
)

// sheetWriter appends rows to one worksheet
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	row    int
	header int
	money  int
}

func (sw *sheetWriter) write(values ...any) error {
	sw.row++
	cell, err := excelize.CoordinatesToCellName(1, sw.row)
	if err != nil {
		return err
	}
	return sw.f.SetSheetRow(sw.sheet, cell, &values)
}

func (sw *sheetWriter) writeHeader(values ...any) error {
	if err := sw.write(values...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, sw.row)
	last, _ := excelize.CoordinatesToCellName(len(values), sw.row)
	return sw.f.SetCellStyle(sw.sheet, first, last, sw.header)
}

// moneyColumns applies the thousands format to columns from..to (1-based)
func (sw *sheetWriter) moneyColumns(from, to int) error {
	if sw.row < 2 {
		return nil
	}
	first, _ := excelize.CoordinatesToCellName(from, 2)
	last, _ := excelize.CoordinatesToCellName(to, sw.row)
	return sw.f.SetCellStyle(sw.sheet, first, last, sw.money)
}

func (x XLSXFormatter) Format(report *domain.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: numFmtThousands})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	newSheet := func(name string) (*sheetWriter, error) {
		if name != summarySheet {
			if _, err := f.NewSheet(name); err != nil {
				return nil, err
			}
		}
		return &sheetWriter{f: f, sheet: name, header: headerStyle, money: moneyStyle}, nil
	}

	summary, err := newSheet(summarySheet)
	if err != nil {
		return nil, err
	}
	if err := writeSummarySheet(summary, report); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}

	if len(report.Retirement) > 0 {
		sw, err := newSheet(savingsSheet)
		if err != nil {
			return nil, err
		}
		if err := writeSavingsSheet(sw, report.Retirement); err != nil {
			return nil, fmt.Errorf("savings sheet: %w", err)
		}
	}

	if len(report.Loans) > 0 {
		sw, err := newSheet(loansSheet)
		if err != nil {
			return nil, err
		}
		if err := writeLoansSheet(sw, report.Loans); err != nil {
			return nil, fmt.Errorf("loans sheet: %w", err)
		}
	}

	if len(report.Planner) > 0 {
		sw, err := newSheet(plannerSheet)
		if err != nil {
			return nil, err
		}
		if err := writePlannerSheet(sw, report.Planner); err != nil {
			return nil, fmt.Errorf("planner sheet: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(sw *sheetWriter, report *domain.Report) error {
	if err := sw.writeHeader("Scenario", "Type", "Result", "Detail"); err != nil {
		return err
	}
	for _, rp := range report.Retirement {
		detail := fmt.Sprintf("%s in today's money", FormatCurrency(rp.Real.Final()))
		if err := sw.write(rp.Name, "retirement", rp.SavingsAtTarget.InexactFloat64(), detail); err != nil {
			return err
		}
	}
	for _, lr := range report.Loans {
		detail := fmt.Sprintf("total interest over %d months", lr.Summary.MonthsToRepay)
		if err := sw.write(lr.Name, "loan", lr.Summary.TotalInterest.InexactFloat64(), detail); err != nil {
			return err
		}
	}
	for _, pp := range report.Planner {
		detail := "investment does not overtake property"
		if c := pp.InvestmentOvertakesProperty; c != nil {
			detail = "investment overtakes property after " + FormatYears(c.At())
		}
		if err := sw.write(pp.Name, "planner", pp.Investment.Final().InexactFloat64(), detail); err != nil {
			return err
		}
	}
	if err := sw.moneyColumns(3, 3); err != nil {
		return err
	}

	sw.row++
	if err := sw.writeHeader("Assumptions"); err != nil {
		return err
	}
	for _, a := range reportAssumptions(report) {
		if err := sw.write(a); err != nil {
			return err
		}
	}
	return nil
}

func writeSavingsSheet(sw *sheetWriter, projections []domain.RetirementProjection) error {
	if err := sw.writeHeader("Scenario", "Year", "Age", "Invested", "Without investing", "Real value"); err != nil {
		return err
	}
	for _, rp := range projections {
		for i, p := range rp.Invested {
			age := rp.Parameters.CurrentAge + p.Period
			if i < len(rp.Ages) {
				age = rp.Ages[i]
			}
			nonInvested, _ := rp.NonInvested.ValueAt(p.Period)
			realValue, _ := rp.Real.ValueAt(p.Period)
			if err := sw.write(rp.Name, p.Period, age, p.Value.InexactFloat64(), nonInvested.InexactFloat64(), realValue.InexactFloat64()); err != nil {
				return err
			}
		}
	}
	return sw.moneyColumns(4, 6)
}

func writeLoansSheet(sw *sheetWriter, loans []domain.LoanReport) error {
	if err := sw.writeHeader("Scenario", "Month", "Payment", "Extra payment", "Principal", "Interest", "Balance", "Cumulative interest"); err != nil {
		return err
	}
	for _, lr := range loans {
		for _, row := range lr.Schedule.Rows {
			if err := sw.write(lr.Name, row.Month,
				row.Payment.InexactFloat64(),
				row.ExtraPayment.InexactFloat64(),
				row.Principal.InexactFloat64(),
				row.Interest.InexactFloat64(),
				row.Balance.InexactFloat64(),
				row.CumulativeInterest.InexactFloat64(),
			); err != nil {
				return err
			}
		}
	}
	return sw.moneyColumns(3, 8)
}

func writePlannerSheet(sw *sheetWriter, projections []domain.PlannerProjection) error {
	if err := sw.writeHeader("Scenario", "Year", "Investment", "Property", "Inflation benchmark"); err != nil {
		return err
	}
	for _, pp := range projections {
		for i, p := range pp.Investment {
			var property, benchmark float64
			if i < len(pp.Property) {
				property = pp.Property[i].Value.InexactFloat64()
			}
			if i < len(pp.Benchmark) {
				benchmark = pp.Benchmark[i].Value.InexactFloat64()
			}
			if err := sw.write(pp.Name, p.Period, p.Value.InexactFloat64(), property, benchmark); err != nil {
				return err
			}
		}
	}
	return sw.moneyColumns(3, 5)
}
