package finance

import "github.com/shopspring/decimal"

// Demo payloads served to anonymous and guest callers. They are computed
// from one fixed synthetic profile so the sample numbers stay mutually
// consistent, and they never touch the database.

const demoNote = "Sample data shown. Create an account to see your personalized numbers."

func demoProfile() Profile {
	return Profile{
		MonthlyIncome:   decimal.NewFromInt(5200),
		MonthlyExpenses: decimal.NewFromInt(3400),
		TotalSavings:    decimal.NewFromInt(12500),
		TotalDebt:       decimal.NewFromInt(8000),
	}
}

func DemoHealthScore() any {
	m := ComputeMetrics(demoProfile())
	return struct {
		IsGuest     bool   `json:"isGuest"`
		Note        string `json:"note"`
		HealthScore int    `json:"healthScore"`
	}{true, demoNote, m.HealthScore}
}

func DemoIncomeScore() any {
	m := ComputeMetrics(demoProfile())
	return struct {
		IsGuest     bool   `json:"isGuest"`
		Note        string `json:"note"`
		IncomeScore int    `json:"incomeScore"`
	}{true, demoNote, m.IncomeScore}
}

func DemoSurvivalEstimate() any {
	m := ComputeMetrics(demoProfile())
	return struct {
		IsGuest        bool            `json:"isGuest"`
		Note           string          `json:"note"`
		SurvivalMonths decimal.Decimal `json:"survivalMonths"`
	}{true, demoNote, m.SurvivalMonths}
}

func DemoInsights() any {
	return struct {
		IsGuest  bool     `json:"isGuest"`
		Note     string   `json:"note"`
		Insights []string `json:"insights"`
	}{true, demoNote, ComputeInsights(demoProfile())}
}

func DemoEmergencyStatus() any {
	return struct {
		IsGuest bool   `json:"isGuest"`
		Note    string `json:"note"`
		EmergencyStatus
	}{true, demoNote, ComputeEmergencyStatus(demoProfile())}
}

func DemoSavingsProjection() any {
	return struct {
		IsGuest bool   `json:"isGuest"`
		Note    string `json:"note"`
		Projection
	}{true, demoNote, BuildProjection(demoProfile(), defaultProjectionMonths)}
}

func DemoAllocation() any {
	return struct {
		IsGuest    bool            `json:"isGuest"`
		Note       string          `json:"note"`
		Allocation AssetAllocation `json:"allocation"`
	}{true, demoNote, AssetAllocation{Stocks: 50, Bonds: 20, Cash: 20, RealEstate: 10}}
}
