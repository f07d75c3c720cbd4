package finance

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Profile is the financial snapshot metrics are computed from. Money fields
// are exact decimals; float drift is not acceptable in derived ratios that
// feed user-facing scores.
type Profile struct {
	MonthlyIncome   decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal `json:"monthlyExpenses"`
	TotalSavings    decimal.Decimal `json:"totalSavings"`
	TotalDebt       decimal.Decimal `json:"totalDebt"`
}

// Metrics are the derived numbers served by the read endpoints.
type Metrics struct {
	HealthScore    int             `json:"healthScore"`
	IncomeScore    int             `json:"incomeScore"`
	SurvivalMonths decimal.Decimal `json:"survivalMonths"`

	ExpenseRatio     decimal.Decimal `json:"expenseRatio"`
	SavingsRatio     decimal.Decimal `json:"savingsRatio"`
	DebtRatio        decimal.Decimal `json:"debtRatio"`
	DisposableIncome decimal.Decimal `json:"disposableIncome"`
}

// AssetAllocation is a percentage split; parts must sum to 100.
type AssetAllocation struct {
	UserID     string    `json:"-" db:"user_id"`
	Stocks     int       `json:"stocks" db:"stocks"`
	Bonds      int       `json:"bonds" db:"bonds"`
	Cash       int       `json:"cash" db:"cash"`
	RealEstate int       `json:"realEstate" db:"real_estate"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

func (a AssetAllocation) Validate() error {
	for _, p := range []int{a.Stocks, a.Bonds, a.Cash, a.RealEstate} {
		if p < 0 || p > 100 {
			return ErrInvalidArgument
		}
	}
	if a.Stocks+a.Bonds+a.Cash+a.RealEstate != 100 {
		return ErrInvalidArgument
	}
	return nil
}

type EmergencyStatus struct {
	TargetMonths decimal.Decimal `json:"targetMonths"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Funded       decimal.Decimal `json:"funded"`
	FundedMonths decimal.Decimal `json:"fundedMonths"`
	Status       string          `json:"status"`
}
