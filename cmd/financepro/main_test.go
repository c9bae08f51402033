package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/financepro/planner/internal/config"
	"github.com/financepro/planner/internal/domain"
	"github.com/financepro/planner/internal/output"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with a settings path that does not exist, so that the
// defaults apply unless the test passes its own --settings
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { output.SetCurrencySymbol(config.DefaultSettings().Output.CurrencySymbol) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--settings", filepath.Join(t.TempDir(), "missing.toml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func readJSONReport(t *testing.T, dir string) domain.Report {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(dir, "financepro_json_*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	var report domain.Report
	require.NoError(t, json.Unmarshal(data, &report))
	return report
}

func TestProductsCommand(t *testing.T) {
	out, err := execute(t, "products")
	require.NoError(t, err)

	assert.Contains(t, out, "etf")
	assert.Contains(t, out, "6.00%")
	assert.Contains(t, out, "deposit_accounts")
	assert.Less(t, strings.Index(out, "aggressive_stocks"), strings.Index(out, "bonds"),
		"products are listed by expected return")
}

func TestRetirementCommand_Console(t *testing.T) {
	out, err := execute(t, "retirement",
		"--current-age", "30", "--target-age", "35",
		"--initial", "10000", "--monthly", "1000",
		"--return-rate", "0", "--tax-rate", "0", "--inflation", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "FINANCIAL PROJECTION REPORT")
	assert.Contains(t, out, "Retirement: Retirement")
	assert.Contains(t, out, "€70,000.00")
}

func TestRetirementCommand_ProductPreset(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "retirement", "--product", "bonds", "--format", "json", "--output-dir", dir)
	require.NoError(t, err)

	report := readJSONReport(t, dir)
	require.Len(t, report.Retirement, 1)
	assert.Equal(t, "3", report.Retirement[0].Parameters.AnnualReturnRate.String())
}

func TestLoanCommand_JSON(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "loan", "--principal", "100000", "--rate", "5", "--years", "15",
		"--format", "json", "--output-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	report := readJSONReport(t, dir)
	require.Len(t, report.Loans, 1)
	assert.Equal(t, 180, report.Loans[0].Summary.MonthsToRepay)
	assert.Equal(t, "790.79", report.Loans[0].Schedule.MonthlyPayment.StringFixed(2))
}

func TestLoanCommand_ExtraPayment(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "loan", "--principal", "100000", "--rate", "5", "--years", "15", "--extra", "1000",
		"--format", "json", "--output-dir", dir)
	require.NoError(t, err)

	report := readJSONReport(t, dir)
	s := report.Loans[0].Summary
	assert.Less(t, s.MonthsToRepay, 180)
	assert.Positive(t, s.MonthsSaved)
	assert.True(t, s.InterestSaved.IsPositive())
}

func TestLoanCommand_InvalidInput(t *testing.T) {
	_, err := execute(t, "loan", "--principal", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "principal")

	_, err = execute(t, "loan", "--principal", "lots")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid number")
}

func TestPlannerCommand(t *testing.T) {
	out, err := execute(t, "planner", "--capital", "100000", "--investment-rate", "8",
		"--property-price", "150000", "--property-growth", "2", "--years", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "Planner: Invest or buy")
	assert.Contains(t, out, "Investment overtakes property")
}

func TestExampleAndRunCommands(t *testing.T) {
	dir := t.TempDir()
	scenarios := filepath.Join(dir, "scenarios.yaml")

	out, err := execute(t, "example", scenarios)
	require.NoError(t, err)
	assert.Contains(t, out, scenarios)
	require.FileExists(t, scenarios)

	reports := filepath.Join(dir, "reports")
	out, err = execute(t, "run", scenarios, "--format", "all", "--output-dir", reports)
	require.NoError(t, err)
	assert.Contains(t, out, "financepro_xlsx_")

	files, err := os.ReadDir(reports)
	require.NoError(t, err)
	assert.Len(t, files, 5)
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err, "a scenario file is required")

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	scenarios := filepath.Join(dir, "scenarios.yaml")
	_, err = execute(t, "example", scenarios)
	require.NoError(t, err)
	_, err = execute(t, "run", scenarios, "--format", "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestSettingsApply(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "settings.toml")
	settings := config.DefaultSettings()
	settings.Output.Format = "json"
	settings.Output.Directory = filepath.Join(dir, "out")
	settings.Output.CurrencySymbol = "$"
	require.NoError(t, config.Save(settings, settingsPath))

	out, err := execute(t, "--settings", settingsPath, "loan")
	require.NoError(t, err)
	assert.Contains(t, out, settings.Output.Directory)
	readJSONReport(t, settings.Output.Directory)

	// Flags take precedence over the settings file
	out, err = execute(t, "--settings", settingsPath, "--format", "console", "loan", "--principal", "1200", "--rate", "0", "--years", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "$100.00")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := newLogger(config.LoggingSettings{Level: "info"}, false, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger, err = newLogger(config.LoggingSettings{Level: "error", JSON: true}, true, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	_, err = newLogger(config.LoggingSettings{Level: "chatty"}, false, &buf)
	assert.Error(t, err)
}

func TestSettingsInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "financepro", "settings.toml")

	out, err := execute(t, "--settings", path, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "format:          console")

	out, err = execute(t, "--settings", path, "settings", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Settings written to "+path)

	written, err := config.LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), written)

	out, err = execute(t, "--settings", path, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: loaded")

	_, err = execute(t, "--settings", path, "settings", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "--settings", path, "settings", "init", "--force")
	assert.NoError(t, err)
}

func TestSettingsDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Cleanup(func() { output.SetCurrencySymbol(config.DefaultSettings().Output.CurrencySymbol) })

	settings := config.DefaultSettings()
	settings.Output.CurrencySymbol = "CHF "
	require.NoError(t, config.Save(settings, config.Path()))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"loan", "--principal", "1200", "--rate", "0", "--years", "1"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "CHF 100.00")
}
