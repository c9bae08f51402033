package output

import (
	"bytes"
	"encoding/csv"

	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// CSVDetailedExporter provides every period of every scenario in long format:
// one row per scenario, period and series.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Type", "Scenario", "Period", "Series", "Value"}); err != nil {
		return nil, err
	}

	write := func(kind, name string, period int, series string, value decimal.Decimal) error {
		return w.Write([]string{kind, name, intToString(period), series, value.StringFixed(2)})
	}
	writeTrajectory := func(kind, name, series string, t domain.Trajectory) error {
		for _, p := range t {
			if err := write(kind, name, p.Period, series, p.Value); err != nil {
				return err
			}
		}
		return nil
	}

	for _, rp := range report.Retirement {
		for _, s := range []struct {
			series string
			t      domain.Trajectory
		}{{"invested", rp.Invested}, {"non_invested", rp.NonInvested}, {"real", rp.Real}} {
			if err := writeTrajectory("retirement", rp.Name, s.series, s.t); err != nil {
				return nil, err
			}
		}
	}

	for _, lr := range report.Loans {
		for _, row := range lr.Schedule.Rows {
			for _, cell := range []struct {
				series string
				value  decimal.Decimal
			}{
				{"payment", row.Payment},
				{"extra_payment", row.ExtraPayment},
				{"principal", row.Principal},
				{"interest", row.Interest},
				{"balance", row.Balance},
				{"cumulative_interest", row.CumulativeInterest},
			} {
				if err := write("loan", lr.Name, row.Month, cell.series, cell.value); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, pp := range report.Planner {
		for _, s := range []struct {
			series string
			t      domain.Trajectory
		}{{"investment", pp.Investment}, {"property", pp.Property}, {"inflation_benchmark", pp.Benchmark}} {
			if err := writeTrajectory("planner", pp.Name, s.series, s.t); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
