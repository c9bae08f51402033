package output_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/financepro/planner/internal/domain"
	"github.com/financepro/planner/internal/output"
	stddec "github.com/shopspring/decimal"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		GeneratedAt: time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC),
		Loans: []domain.LoanReport{{
			Name:       "Car",
			Parameters: domain.LoanParameters{Principal: stddec.NewFromInt(1200), TermYears: 1},
			Schedule: domain.AmortizationSchedule{
				MonthlyPayment: stddec.NewFromInt(100),
				Rows:           []domain.AmortizationRow{{Month: 1, Payment: stddec.NewFromInt(100), Principal: stddec.NewFromInt(100), Balance: stddec.NewFromInt(1100)}},
			},
			Summary: domain.LoanSummary{MonthsToRepay: 1, TotalPaid: stddec.NewFromInt(100)},
		}},
	}
}

func TestFormatters(t *testing.T) {
	if got := output.FormatCurrency(stddec.NewFromFloat(123.45)); got != "€123.45" {
		t.Fatalf("FormatCurrency = %q", got)
	}
	if got := output.FormatPercentage(stddec.NewFromFloat(12.34)); got != "12.34%" {
		t.Fatalf("FormatPercentage = %q", got)
	}
}

func TestGenerateReport_JSON_CSV(t *testing.T) {
	dir := t.TempDir()

	files, err := output.GenerateReport(sampleReport(), "json", dir)
	if err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	want := filepath.Join(dir, "financepro_json_20250304_050607.json")
	if len(files) != 1 || files[0] != want {
		t.Fatalf("GenerateReport json files = %v, want %s", files, want)
	}

	files, err = output.GenerateReport(sampleReport(), "csv-summary", dir)
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if !strings.Contains(string(data), "loan,Car,1,1100.00") {
		t.Fatalf("unexpected csv content: %s", data)
	}
}

func TestGenerateReport_All(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	files, err := output.GenerateReport(sampleReport(), "all", dir)
	if err != nil {
		t.Fatalf("GenerateReport all error: %v", err)
	}
	if len(files) != 5 {
		t.Fatalf("expected 5 files, got %v", files)
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			t.Fatalf("missing %s: %v", f, err)
		}
		if strings.HasSuffix(f, ".txt") {
			t.Fatalf("console output should not be written by all: %s", f)
		}
	}
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(&domain.Report{}, "definitely-not-a-format", t.TempDir())
	if err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "unsupported output format") || !strings.Contains(msg, "Try one of:") || !strings.Contains(msg, "excel") {
		t.Fatalf("error message missing suggestions: %s", msg)
	}
}
