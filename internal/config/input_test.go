package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/financepro/planner/internal/calculation"
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScenarioFile = `retirement:
  - name: "ETF plan"
    product: etf
    current_age: 30
    target_age: 65
    initial_amount: 10000
    monthly_contribution: 500
    annual_lump_sum: 1000
    tax_rate: 26
    inflation_rate: 2
  - name: "Under the mattress"
    current_age: 30
    target_age: 65
    initial_amount: 10000
    monthly_contribution: 500
    annual_return_rate: 0
loans:
  - name: "Mortgage"
    principal: 100000
    annual_interest_rate: 5
    term_years: 15
    monthly_extra_payment: 250
planner:
  - name: "Invest or buy"
    initial_capital: 100000
    investment_rate: 6
    property_price: 150000
    inflation_rate: 2
    years: 20
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, testScenarioFile))
	require.NoError(t, err)

	assert.Len(t, config.Retirement, 2)
	assert.Len(t, config.Loans, 1)
	assert.Len(t, config.Planner, 1)

	etf, err := config.Retirement[0].ResolvedParameters()
	require.NoError(t, err)
	assert.True(t, etf.AnnualReturnRate.Equal(decimal.NewFromInt(6)))
	assert.True(t, etf.InitialAmount.Equal(decimal.NewFromInt(10000)))

	assert.True(t, config.Retirement[1].ReturnRateSet)
	assert.True(t, config.Loans[0].Parameters.MonthlyExtraPayment.Equal(decimal.NewFromInt(250)))
	assert.True(t, config.Planner[0].Parameters.PropertyGrowthRate.Equal(domain.DefaultPropertyGrowthRate))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile("nonexistent_file.yaml")
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "loans:\n  - name: [unclosed\n"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_AcceptsJSON(t *testing.T) {
	doc := `{"loans": [{"name": "Car", "principal": 20000, "annual_interest_rate": 4, "term_years": 5}]}`
	config, err := NewInputParser().Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, config.Loans, 1)
	assert.Equal(t, 60, config.Loans[0].Parameters.Months())
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*domain.Configuration)
		errContains string
		invalidArg  bool
	}{
		{
			name:        "no scenarios",
			modify:      func(c *domain.Configuration) { *c = domain.Configuration{} },
			errContains: "no scenarios provided",
		},
		{
			name:        "missing name",
			modify:      func(c *domain.Configuration) { c.Loans[0].Name = "" },
			errContains: "loan scenario 0: name is required",
		},
		{
			name: "duplicate name",
			modify: func(c *domain.Configuration) {
				c.Loans = append(c.Loans, c.Loans[0])
			},
			errContains: "defined more than once",
		},
		{
			name:        "target age not after current age",
			modify:      func(c *domain.Configuration) { c.Retirement[0].Parameters.TargetAge = 30 },
			errContains: `retirement scenario "ETF savings plan"`,
			invalidArg:  true,
		},
		{
			name:        "unknown product",
			modify:      func(c *domain.Configuration) { c.Retirement[0].Product = "lottery" },
			errContains: "unknown financial product",
		},
		{
			name: "no return rate",
			modify: func(c *domain.Configuration) {
				c.Retirement[1].ReturnRateSet = false
				c.Retirement[1].Parameters.AnnualReturnRate = decimal.Zero
			},
			errContains: "either product or annual_return_rate is required",
		},
		{
			name:        "zero loan term",
			modify:      func(c *domain.Configuration) { c.Loans[0].Parameters.TermYears = 0 },
			errContains: `loan scenario "Mortgage"`,
			invalidArg:  true,
		},
		{
			name:        "negative principal",
			modify:      func(c *domain.Configuration) { c.Loans[1].Parameters.Principal = decimal.NewFromInt(-5) },
			errContains: "principal",
			invalidArg:  true,
		},
		{
			name:        "planner without years",
			modify:      func(c *domain.Configuration) { c.Planner[0].Parameters.Years = 0 },
			errContains: "years must be at least 1",
		},
		{
			name:        "planner negative rate",
			modify:      func(c *domain.Configuration) { c.Planner[0].Parameters.InvestmentRate = decimal.NewFromInt(-1) },
			errContains: "rates cannot be negative",
		},
		{
			name:        "planner negative property price",
			modify:      func(c *domain.Configuration) { c.Planner[0].Parameters.PropertyPrice = decimal.NewFromInt(-1) },
			errContains: "property price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewInputParser()
			config := parser.CreateExampleConfiguration()
			tt.modify(config)

			err := parser.ValidateConfiguration(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
			if tt.invalidArg {
				assert.ErrorIs(t, err, calculation.ErrInvalidParameter)
			}
		})
	}
}

func TestValidateConfiguration_PlannerAcceptsZeroAmounts(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	config.Planner[0].Parameters.InitialCapital = decimal.Zero
	config.Planner[0].Parameters.PropertyPrice = decimal.Zero

	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.NotNil(t, config)
	assert.Len(t, config.Retirement, 2)
	assert.Len(t, config.Loans, 2)
	assert.Len(t, config.Planner, 1)
	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	config, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, config.ScenarioCount())

	etf, err := config.Retirement[0].ResolvedParameters()
	require.NoError(t, err)
	assert.True(t, etf.AnnualReturnRate.Equal(decimal.NewFromInt(6)))

	deposit, err := config.Retirement[1].ResolvedParameters()
	require.NoError(t, err)
	assert.True(t, deposit.AnnualReturnRate.Equal(decimal.NewFromFloat(1.5)))
	assert.True(t, config.Loans[1].Parameters.MonthlyExtraPayment.Equal(decimal.NewFromInt(300)))
}
