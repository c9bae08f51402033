package domain

import (
	"github.com/shopspring/decimal"
)

// LoanParameters holds the inputs of a fixed-payment loan
type LoanParameters struct {
	Principal           decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualInterestRate  decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"`
	TermYears           int             `yaml:"term_years" json:"term_years"`
	MonthlyExtraPayment decimal.Decimal `yaml:"monthly_extra_payment" json:"monthly_extra_payment"`
}

// Months returns the number of scheduled monthly payments
func (lp LoanParameters) Months() int {
	return lp.TermYears * 12
}

// AmortizationRow is one month of an amortization schedule
type AmortizationRow struct {
	Month              int             `json:"month"`
	Payment            decimal.Decimal `json:"payment"`
	ExtraPayment       decimal.Decimal `json:"extra_payment"`
	Principal          decimal.Decimal `json:"principal"`
	Interest           decimal.Decimal `json:"interest"`
	Balance            decimal.Decimal `json:"balance"`
	CumulativeInterest decimal.Decimal `json:"cumulative_interest"`
}

// TotalPayment returns the scheduled payment plus the extra principal payment
func (r AmortizationRow) TotalPayment() decimal.Decimal {
	return r.Payment.Add(r.ExtraPayment)
}

// AmortizationSchedule is the ordered list of monthly rows until payoff
type AmortizationSchedule struct {
	MonthlyPayment decimal.Decimal   `json:"monthly_payment"`
	Rows           []AmortizationRow `json:"rows"`
}

// Len returns the number of months in the schedule
func (s AmortizationSchedule) Len() int { return len(s.Rows) }

// Final returns the last row of the schedule
func (s AmortizationSchedule) Final() AmortizationRow {
	if len(s.Rows) == 0 {
		return AmortizationRow{}
	}
	return s.Rows[len(s.Rows)-1]
}

// TotalInterest returns the interest paid over the whole schedule
func (s AmortizationSchedule) TotalInterest() decimal.Decimal {
	return s.Final().CumulativeInterest
}

// TotalPaid returns the money actually needed to retire the debt: every
// balance reduction plus the interest charged. A final payment that would
// overshoot the remaining balance only counts up to that balance.
func (s AmortizationSchedule) TotalPaid(principal decimal.Decimal) decimal.Decimal {
	if len(s.Rows) == 0 {
		return decimal.Zero
	}
	repaid := principal.Sub(s.Final().Balance)
	return repaid.Add(s.TotalInterest())
}

// YearEndRows returns the row closing each 12-month block plus the final row
// when the schedule ends mid-year
func (s AmortizationSchedule) YearEndRows() []AmortizationRow {
	var rows []AmortizationRow
	for _, r := range s.Rows {
		if r.Month%12 == 0 {
			rows = append(rows, r)
		}
	}
	if n := len(s.Rows); n > 0 && s.Rows[n-1].Month%12 != 0 {
		rows = append(rows, s.Rows[n-1])
	}
	return rows
}

// LoanSummary holds the headline figures of a schedule
type LoanSummary struct {
	MonthsToRepay int             `json:"months_to_repay"`
	TotalInterest decimal.Decimal `json:"total_interest"`
	TotalPaid     decimal.Decimal `json:"total_paid"`

	// Savings versus the same loan without extra payments
	MonthsSaved   int             `json:"months_saved"`
	InterestSaved decimal.Decimal `json:"interest_saved"`
}

// LoanReport is the result of amortizing a named loan scenario
type LoanReport struct {
	Name       string               `json:"name"`
	Parameters LoanParameters       `json:"parameters"`
	Schedule   AmortizationSchedule `json:"schedule"`
	Summary    LoanSummary          `json:"summary"`
}
