package finance

import "github.com/shopspring/decimal"

// Savings projection: compound growth of the current balance plus a
// recurring monthly contribution,
//
//	FV = current*(1+r)^n + monthly*((1+r)^n - 1)/r
//
// with r the monthly rate derived from an annual percentage. Zero-rate
// degenerates to simple accumulation.

const (
	defaultProjectionMonths = 12
	// maxProjectionMonths bounds the exponent; fifty years is beyond any
	// meaningful planning horizon.
	maxProjectionMonths = 600
)

var (
	defaultAnnualReturnPct = decimal.NewFromInt(7)
	dOne                   = decimal.NewFromInt(1)
	monthsPerYear          = decimal.NewFromInt(12)
)

// Projection is the served savings-trajectory estimate.
type Projection struct {
	CurrentSavings  decimal.Decimal `json:"currentSavings"`
	MonthlySavings  decimal.Decimal `json:"monthlySavings"`
	AnnualReturnPct decimal.Decimal `json:"annualReturnPct"`
	Months          int             `json:"months"`

	FutureValue   decimal.Decimal `json:"futureValue"`
	Contributions decimal.Decimal `json:"contributions"`
	Growth        decimal.Decimal `json:"growth"`
}

// ComputeProjection returns the projected future value. Pure and
// deterministic; non-positive horizons return the current balance.
func ComputeProjection(current, monthly, annualPct decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return current
	}

	r := annualPct.Div(dHundred).Div(monthsPerYear)
	n := decimal.NewFromInt(int64(months))

	var future decimal.Decimal
	if r.IsZero() {
		future = current.Add(monthly.Mul(n))
	} else {
		growth := dOne.Add(r).Pow(n)
		future = current.Mul(growth).Add(monthly.Mul(growth.Sub(dOne)).Div(r))
	}

	if future.IsNegative() {
		return dZero
	}
	return future
}

// BuildProjection assembles the full payload for a profile over the given
// horizon. Monthly contribution is the disposable income, floored at zero:
// a deficit does not drain projected savings, it just stops contributions.
func BuildProjection(p Profile, months int) Projection {
	if months <= 0 {
		months = defaultProjectionMonths
	}
	if months > maxProjectionMonths {
		months = maxProjectionMonths
	}

	monthly := p.MonthlyIncome.Sub(p.MonthlyExpenses)
	if monthly.IsNegative() {
		monthly = dZero
	}

	future := ComputeProjection(p.TotalSavings, monthly, defaultAnnualReturnPct, months).Round(2)
	contributions := monthly.Mul(decimal.NewFromInt(int64(months))).Round(2)

	return Projection{
		CurrentSavings:  p.TotalSavings.Round(2),
		MonthlySavings:  monthly.Round(2),
		AnnualReturnPct: defaultAnnualReturnPct,
		Months:          months,
		FutureValue:     future,
		Contributions:   contributions,
		Growth:          future.Sub(p.TotalSavings).Sub(contributions).Round(2),
	}
}
