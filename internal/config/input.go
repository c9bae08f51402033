package config

import (
	"fmt"
	"os"

	"github.com/financepro/planner/internal/calculation"
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario file. JSON is accepted too since it is valid YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates scenario file content
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.ScenarioCount() == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool)
	checkName := func(kind string, i int, name string) error {
		if name == "" {
			return fmt.Errorf("%s scenario %d: name is required", kind, i)
		}
		key := kind + "/" + name
		if seen[key] {
			return fmt.Errorf("%s scenario %q is defined more than once", kind, name)
		}
		seen[key] = true
		return nil
	}

	for i, scenario := range config.Retirement {
		if err := checkName("retirement", i, scenario.Name); err != nil {
			return err
		}
		if err := ip.validateRetirementScenario(&scenario); err != nil {
			return fmt.Errorf("retirement scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	for i, scenario := range config.Loans {
		if err := checkName("loan", i, scenario.Name); err != nil {
			return err
		}
		if err := calculation.ValidateLoanParameters(scenario.Parameters); err != nil {
			return fmt.Errorf("loan scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	for i, scenario := range config.Planner {
		if err := checkName("planner", i, scenario.Name); err != nil {
			return err
		}
		if err := ip.validatePlannerScenario(&scenario); err != nil {
			return fmt.Errorf("planner scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	return nil
}

// validateRetirementScenario resolves the product preset and checks the
// resulting projection parameters
func (ip *InputParser) validateRetirementScenario(scenario *domain.RetirementScenario) error {
	if scenario.Product == "" && !scenario.ReturnRateSet && scenario.Parameters.AnnualReturnRate.IsZero() {
		// A zero return is allowed, but it has to be stated
		return fmt.Errorf("either product or annual_return_rate is required")
	}
	params, err := scenario.ResolvedParameters()
	if err != nil {
		return err
	}
	return calculation.ValidateProjectionParameters(params)
}

// validatePlannerScenario checks the inputs of the three growth trajectories
func (ip *InputParser) validatePlannerScenario(scenario *domain.PlannerScenario) error {
	p := scenario.Parameters
	if p.Years < 1 {
		return fmt.Errorf("years must be at least 1")
	}
	if p.InitialCapital.IsNegative() {
		return fmt.Errorf("initial capital cannot be negative")
	}
	if p.PropertyPrice.IsNegative() {
		return fmt.Errorf("property price cannot be negative")
	}
	if p.InvestmentRate.IsNegative() || p.PropertyGrowthRate.IsNegative() || p.InflationRate.IsNegative() {
		return fmt.Errorf("rates cannot be negative")
	}
	return nil
}

// SaveConfiguration writes a configuration as YAML
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Retirement: []domain.RetirementScenario{
			{
				Name:    "ETF savings plan",
				Product: "etf",
				Parameters: domain.ProjectionParameters{
					CurrentAge:          30,
					TargetAge:           65,
					InitialAmount:       decimal.NewFromInt(10000),
					MonthlyContribution: decimal.NewFromInt(500),
					AnnualLumpSum:       decimal.NewFromInt(1000),
					TaxRate:             decimal.NewFromInt(26),
					InflationRate:       decimal.NewFromInt(2),
					MonthlyExpenses:     decimal.NewFromInt(2500),
				},
			},
			{
				Name: "Deposit account",
				Parameters: domain.ProjectionParameters{
					CurrentAge:          30,
					TargetAge:           65,
					InitialAmount:       decimal.NewFromInt(10000),
					MonthlyContribution: decimal.NewFromInt(500),
					AnnualLumpSum:       decimal.NewFromInt(1000),
					AnnualReturnRate:    decimal.NewFromFloat(1.5),
					TaxRate:             decimal.NewFromInt(26),
					InflationRate:       decimal.NewFromInt(2),
					MonthlyExpenses:     decimal.NewFromInt(2500),
				},
				ReturnRateSet: true,
			},
		},
		Loans: []domain.LoanScenario{
			{
				Name: "Mortgage",
				Parameters: domain.LoanParameters{
					Principal:          decimal.NewFromInt(200000),
					AnnualInterestRate: decimal.NewFromFloat(3.5),
					TermYears:          25,
				},
			},
			{
				Name: "Mortgage with extra payments",
				Parameters: domain.LoanParameters{
					Principal:           decimal.NewFromInt(200000),
					AnnualInterestRate:  decimal.NewFromFloat(3.5),
					TermYears:           25,
					MonthlyExtraPayment: decimal.NewFromInt(300),
				},
			},
		},
		Planner: []domain.PlannerScenario{
			{
				Name: "Invest or buy",
				Parameters: domain.PlannerParameters{
					InitialCapital:     decimal.NewFromInt(100000),
					InvestmentRate:     decimal.NewFromInt(6),
					PropertyPrice:      decimal.NewFromInt(150000),
					PropertyGrowthRate: domain.DefaultPropertyGrowthRate,
					InflationRate:      decimal.NewFromInt(2),
					Years:              20,
				},
			},
		},
	}
}
