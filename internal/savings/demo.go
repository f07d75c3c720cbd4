package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

const demoNote = "Sample data shown. Create an account to track your own savings plans."

// DemoStatus is the fixed payload served to anonymous and guest callers.
// Two named plans, stable ids and timestamps, no database access.
func DemoStatus() any {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	plans := []Plan{
		{
			ID:           "demo-plan-emergency",
			Name:         "Emergency Fund",
			TargetAmount: decimal.NewFromInt(15000),
			SavedAmount:  decimal.NewFromInt(8200),
			Locked:       true,
			CreatedAt:    created,
		},
		{
			ID:           "demo-plan-vacation",
			Name:         "Dream Vacation",
			TargetAmount: decimal.NewFromInt(4500),
			SavedAmount:  decimal.NewFromInt(1750),
			CreatedAt:    created.AddDate(0, 1, 0),
		},
	}

	st := Status{Plans: plans, TotalSaved: decimal.Zero, TotalTarget: decimal.Zero}
	for _, p := range plans {
		st.TotalSaved = st.TotalSaved.Add(p.SavedAmount)
		st.TotalTarget = st.TotalTarget.Add(p.TargetAmount)
		if p.Locked {
			st.LockedCount++
		}
	}

	return struct {
		IsGuest bool   `json:"isGuest"`
		Note    string `json:"note"`
		Status
	}{true, demoNote, st}
}

// DemoTransactions is the fixed transaction history for demo callers.
func DemoTransactions() any {
	base := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{ID: "demo-tx-1", PlanID: "demo-plan-emergency", Type: TransactionDeposit, Amount: decimal.NewFromInt(500), Note: "Monthly auto-save", CreatedAt: base},
		{ID: "demo-tx-2", PlanID: "demo-plan-vacation", Type: TransactionDeposit, Amount: decimal.NewFromInt(250), Note: "Bonus", CreatedAt: base.AddDate(0, 0, 14)},
		{ID: "demo-tx-3", PlanID: "demo-plan-vacation", Type: TransactionWithdraw, Amount: decimal.NewFromInt(100), Note: "Flight deposit", CreatedAt: base.AddDate(0, 0, 20)},
	}
	return struct {
		IsGuest      bool          `json:"isGuest"`
		Note         string        `json:"note"`
		Transactions []Transaction `json:"transactions"`
	}{true, demoNote, txs}
}
