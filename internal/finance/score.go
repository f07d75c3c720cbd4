package finance

import "github.com/shopspring/decimal"

// Scoring weights. The feature set (expense/savings/debt ratios, disposable
// income, savings buffer in months) mirrors the inputs of the original risk
// model; the weights below replace the trained ensemble with a fixed,
// explainable linear rule.
var (
	dZero    = decimal.Zero
	dHundred = decimal.NewFromInt(100)

	expenseWeight = decimal.NewFromInt(40)
	debtWeight    = decimal.NewFromInt(15)
	bufferWeight  = decimal.RequireFromString("2.5")

	expenseRatioCap = decimal.RequireFromString("1.5")
	debtRatioCap    = decimal.NewFromInt(2)
	bufferCapMonths = decimal.NewFromInt(12)

	// Annual income band used for the income score.
	incomeFloor = decimal.NewFromInt(20000)
	incomeCeil  = decimal.NewFromInt(200000)

	// Survival months are capped so a tiny expense figure does not
	// produce absurd estimates.
	survivalCap = decimal.NewFromInt(120)

	emergencyTargetMonths = decimal.NewFromInt(6)
)

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return dZero
	}
	return num.Div(den)
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// ComputeMetrics derives all served metrics from a profile. Pure and
// deterministic; both the real path and the demo fixtures go through it.
func ComputeMetrics(p Profile) Metrics {
	expenseRatio := ratio(p.MonthlyExpenses, p.MonthlyIncome)
	savingsRatio := ratio(p.TotalSavings, p.MonthlyIncome)
	debtRatio := ratio(p.TotalDebt, p.MonthlyIncome.Mul(decimal.NewFromInt(12)))
	disposable := p.MonthlyIncome.Sub(p.MonthlyExpenses)

	survival := clamp(ratio(p.TotalSavings, p.MonthlyExpenses), dZero, survivalCap)

	// 70 base, minus up to 60 for expense pressure, minus up to 30 for
	// debt load, plus up to 30 for the savings buffer. Clamped to 0..100.
	score := decimal.NewFromInt(70).
		Sub(clamp(expenseRatio, dZero, expenseRatioCap).Mul(expenseWeight)).
		Sub(clamp(debtRatio, dZero, debtRatioCap).Mul(debtWeight)).
		Add(clamp(survival, dZero, bufferCapMonths).Mul(bufferWeight))
	health := clamp(score, dZero, dHundred)

	return Metrics{
		HealthScore:      int(health.Round(0).IntPart()),
		IncomeScore:      incomeScore(p.MonthlyIncome),
		SurvivalMonths:   survival.Round(1),
		ExpenseRatio:     expenseRatio.Round(4),
		SavingsRatio:     savingsRatio.Round(4),
		DebtRatio:        debtRatio.Round(4),
		DisposableIncome: disposable.Round(2),
	}
}

// incomeScore places annual income on the 20k–200k band as 0–100.
func incomeScore(monthlyIncome decimal.Decimal) int {
	annual := monthlyIncome.Mul(decimal.NewFromInt(12))
	banded := clamp(annual, incomeFloor, incomeCeil)
	score := banded.Sub(incomeFloor).Div(incomeCeil.Sub(incomeFloor)).Mul(dHundred)
	return int(score.Round(0).IntPart())
}

// ComputeEmergencyStatus reports progress toward a six-month expense buffer.
func ComputeEmergencyStatus(p Profile) EmergencyStatus {
	target := p.MonthlyExpenses.Mul(emergencyTargetMonths)
	months := clamp(ratio(p.TotalSavings, p.MonthlyExpenses), dZero, survivalCap)

	status := "critical"
	switch {
	case months.GreaterThanOrEqual(emergencyTargetMonths):
		status = "secure"
	case months.GreaterThanOrEqual(decimal.NewFromInt(3)):
		status = "building"
	case months.GreaterThanOrEqual(decimal.NewFromInt(1)):
		status = "vulnerable"
	}

	return EmergencyStatus{
		TargetMonths: emergencyTargetMonths,
		TargetAmount: target.Round(2),
		Funded:       p.TotalSavings.Round(2),
		FundedMonths: months.Round(1),
		Status:       status,
	}
}

// ComputeInsights turns the metrics into short human-readable observations.
func ComputeInsights(p Profile) []string {
	m := ComputeMetrics(p)
	var out []string

	if m.ExpenseRatio.GreaterThan(decimal.RequireFromString("0.8")) {
		out = append(out, "Your expenses consume most of your income. Reducing fixed costs would improve your health score the fastest.")
	} else if m.DisposableIncome.GreaterThan(dZero) {
		out = append(out, "You have positive disposable income each month. Automating transfers into savings would lock that in.")
	}

	if m.SurvivalMonths.LessThan(decimal.NewFromInt(3)) {
		out = append(out, "Your emergency buffer covers less than three months of expenses. Prioritize the emergency fund before other goals.")
	} else if m.SurvivalMonths.GreaterThanOrEqual(emergencyTargetMonths) {
		out = append(out, "Your emergency fund meets the six-month target. Surplus savings could work harder elsewhere.")
	}

	if m.DebtRatio.GreaterThan(decimal.RequireFromString("0.5")) {
		out = append(out, "Debt is high relative to annual income. Paying it down will lift your health score.")
	}

	if len(out) == 0 {
		out = append(out, "Your finances look balanced. Keep your savings rate steady.")
	}
	return out
}
