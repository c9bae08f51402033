package calculation

import (
	"github.com/financepro/planner/internal/domain"
	"github.com/shopspring/decimal"
)

// payoffTolerance is the remaining balance treated as fully repaid
var payoffTolerance = decimal.New(1, -6)

// MonthlyInterestRate converts an annual percentage into a monthly fraction
func MonthlyInterestRate(annualInterestRate decimal.Decimal) decimal.Decimal {
	return annualInterestRate.Div(monthsPercent)
}

// MonthlyPayment returns the fixed annuity payment P x r x (1+r)^n / ((1+r)^n - 1).
// At a zero rate the formula degenerates and the payment is P / n.
func MonthlyPayment(principal, annualInterestRate decimal.Decimal, months int) decimal.Decimal {
	n := decimal.NewFromInt(int64(months))
	r := MonthlyInterestRate(annualInterestRate)
	if r.IsZero() {
		return principal.Div(n)
	}
	compound := one.Add(r).Pow(n)
	return principal.Mul(r).Mul(compound).Div(compound.Sub(one))
}

// ValidateLoanParameters checks the preconditions of Amortize
func ValidateLoanParameters(params domain.LoanParameters) error {
	if !params.Principal.IsPositive() {
		return invalidParameter("principal", "must be positive")
	}
	if params.TermYears <= 0 {
		return invalidParameter("term_years", "must be positive")
	}
	if params.AnnualInterestRate.IsNegative() {
		return invalidParameter("annual_interest_rate", "cannot be negative")
	}
	if params.MonthlyExtraPayment.IsNegative() {
		return invalidParameter("monthly_extra_payment", "cannot be negative")
	}
	return nil
}

// Amortize builds the monthly schedule of a fixed-payment loan. Each month the
// interest on the outstanding balance is charged, and the balance drops by the
// principal part of the payment plus any extra payment. The balance never goes
// below zero and the schedule stops in the month it reaches zero.
func Amortize(params domain.LoanParameters) (domain.AmortizationSchedule, error) {
	if err := ValidateLoanParameters(params); err != nil {
		return domain.AmortizationSchedule{}, err
	}

	months := params.Months()
	rate := MonthlyInterestRate(params.AnnualInterestRate)
	payment := MonthlyPayment(params.Principal, params.AnnualInterestRate, months)

	rows := make([]domain.AmortizationRow, 0, months)
	balance := params.Principal
	cumulativeInterest := decimal.Zero

	for month := 1; month <= months; month++ {
		interest := balance.Mul(rate).Round(balanceScale)
		principal := payment.Sub(interest)
		cumulativeInterest = cumulativeInterest.Add(interest)

		balance = balance.Sub(principal.Add(params.MonthlyExtraPayment))
		if balance.LessThanOrEqual(payoffTolerance) {
			balance = decimal.Zero
		}

		rows = append(rows, domain.AmortizationRow{
			Month:              month,
			Payment:            payment,
			ExtraPayment:       params.MonthlyExtraPayment,
			Principal:          principal,
			Interest:           interest,
			Balance:            balance,
			CumulativeInterest: cumulativeInterest,
		})

		if balance.IsZero() {
			break
		}
	}

	return domain.AmortizationSchedule{MonthlyPayment: payment, Rows: rows}, nil
}

// SummarizeLoan derives the headline figures of a schedule. baseline is the
// schedule of the same loan without extra payments, used to report savings;
// pass nil when there is nothing to compare against.
func SummarizeLoan(params domain.LoanParameters, schedule, baseline *domain.AmortizationSchedule) domain.LoanSummary {
	summary := domain.LoanSummary{
		MonthsToRepay: schedule.Len(),
		TotalInterest: schedule.TotalInterest(),
		TotalPaid:     schedule.TotalPaid(params.Principal),
		InterestSaved: decimal.Zero,
	}
	if baseline != nil {
		summary.MonthsSaved = baseline.Len() - schedule.Len()
		summary.InterestSaved = baseline.TotalInterest().Sub(schedule.TotalInterest())
	}
	return summary
}
