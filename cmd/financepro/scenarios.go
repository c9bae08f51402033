package main

import (
	"github.com/financepro/planner/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newRetirementCmd(a *app) *cobra.Command {
	scenario := domain.RetirementScenario{Name: "Retirement"}
	p := &scenario.Parameters

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Project savings up to a target age",
		Long: "Project savings month by month up to the target age, with and without investing, " +
			"and show the result in today's money. The return comes from --return-rate or a --product preset.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario.ReturnRateSet = cmd.Flags().Changed("return-rate")
			if scenario.ReturnRateSet {
				scenario.Product = ""
			}
			return a.run(cmd, &domain.Configuration{Retirement: []domain.RetirementScenario{scenario}})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&scenario.Name, "name", scenario.Name, "Scenario name")
	flags.IntVar(&p.CurrentAge, "current-age", 30, "Current age")
	flags.IntVar(&p.TargetAge, "target-age", 67, "Age at which savings are needed")
	flags.Var(newDecimalValue(&p.InitialAmount, decimal.Zero), "initial", "Initial savings")
	flags.Var(newDecimalValue(&p.MonthlyContribution, decimal.NewFromInt(500)), "monthly", "Monthly contribution")
	flags.Var(newDecimalValue(&p.AnnualLumpSum, decimal.Zero), "lump-sum", "Extra contribution at the end of every year")
	flags.Var(newDecimalValue(&p.AnnualReturnRate, decimal.Zero), "return-rate", "Annual return in percent, overrides --product")
	flags.StringVar(&scenario.Product, "product", "etf", "Financial product preset, see the products command")
	flags.Var(newDecimalValue(&p.TaxRate, decimal.NewFromInt(25)), "tax-rate", "Tax on returns in percent")
	flags.Var(newDecimalValue(&p.InflationRate, decimal.NewFromInt(2)), "inflation", "Annual inflation in percent")
	flags.Var(newDecimalValue(&p.MonthlyExpenses, decimal.Zero), "expenses", "Expected monthly expenses after the target age")
	return cmd
}

func newLoanCmd(a *app) *cobra.Command {
	scenario := domain.LoanScenario{Name: "Loan"}
	p := &scenario.Parameters

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Amortize a fixed-payment loan",
		Long:  "Build the monthly amortization schedule of a loan. With --extra the savings against the plain schedule are shown.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &domain.Configuration{Loans: []domain.LoanScenario{scenario}})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&scenario.Name, "name", scenario.Name, "Scenario name")
	flags.Var(newDecimalValue(&p.Principal, decimal.NewFromInt(200000)), "principal", "Amount borrowed")
	flags.Var(newDecimalValue(&p.AnnualInterestRate, decimal.NewFromFloat(3.5)), "rate", "Annual interest rate in percent")
	flags.IntVar(&p.TermYears, "years", 25, "Term in years")
	flags.Var(newDecimalValue(&p.MonthlyExtraPayment, decimal.Zero), "extra", "Extra principal payment every month")
	return cmd
}

func newPlannerCmd(a *app) *cobra.Command {
	scenario := domain.PlannerScenario{Name: "Invest or buy"}
	p := &scenario.Parameters

	cmd := &cobra.Command{
		Use:   "planner",
		Short: "Compare investing capital against buying property",
		Long: "Grow the capital at the investment rate and the property price at the property growth rate, " +
			"and report when the investment overtakes the property.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, &domain.Configuration{Planner: []domain.PlannerScenario{scenario}})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&scenario.Name, "name", scenario.Name, "Scenario name")
	flags.Var(newDecimalValue(&p.InitialCapital, decimal.NewFromInt(100000)), "capital", "Capital to invest")
	flags.Var(newDecimalValue(&p.InvestmentRate, decimal.NewFromInt(6)), "investment-rate", "Annual investment return in percent")
	flags.Var(newDecimalValue(&p.PropertyPrice, decimal.NewFromInt(150000)), "property-price", "Property price")
	flags.Var(newDecimalValue(&p.PropertyGrowthRate, domain.DefaultPropertyGrowthRate), "property-growth", "Annual property appreciation in percent")
	flags.Var(newDecimalValue(&p.InflationRate, decimal.NewFromInt(2)), "inflation", "Annual inflation in percent")
	flags.IntVar(&p.Years, "years", 20, "Years to project")
	return cmd
}
