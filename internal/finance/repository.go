package finance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Reads join the profiles row with the live savings total so TotalSavings
// always reflects plan balances rather than a stale copy.

func getProfile(ctx context.Context, db *sql.DB, userID string) (Profile, error) {
	const q = `
SELECT
	COALESCE(p.monthly_income, 0),
	COALESCE(p.monthly_expenses, 0),
	COALESCE(p.total_debt, 0),
	COALESCE((SELECT SUM(sp.saved_amount) FROM savings_plans sp WHERE sp.user_id = u.id), 0)
FROM users u
LEFT JOIN profiles p ON p.user_id = u.id
WHERE u.id = $1
`
	var p Profile
	err := db.QueryRowContext(ctx, q, userID).Scan(
		&p.MonthlyIncome,
		&p.MonthlyExpenses,
		&p.TotalDebt,
		&p.TotalSavings,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

func upsertProfile(ctx context.Context, db *sql.DB, userID string, income, expenses, debt decimal.Decimal, now time.Time) error {
	const q = `
INSERT INTO profiles (user_id, monthly_income, monthly_expenses, total_debt, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id) DO UPDATE
SET monthly_income = EXCLUDED.monthly_income,
    monthly_expenses = EXCLUDED.monthly_expenses,
    total_debt = EXCLUDED.total_debt,
    updated_at = EXCLUDED.updated_at
`
	_, err := db.ExecContext(ctx, q, userID, income, expenses, debt, now)
	return err
}

func getAllocation(ctx context.Context, db *sql.DB, userID string) (AssetAllocation, error) {
	const q = `
SELECT user_id, stocks, bonds, cash, real_estate, updated_at
FROM asset_allocations
WHERE user_id = $1
`
	var a AssetAllocation
	err := db.QueryRowContext(ctx, q, userID).Scan(
		&a.UserID,
		&a.Stocks,
		&a.Bonds,
		&a.Cash,
		&a.RealEstate,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AssetAllocation{}, ErrNotFound
		}
		return AssetAllocation{}, err
	}
	return a, nil
}

func upsertAllocation(ctx context.Context, db *sql.DB, a AssetAllocation) error {
	const q = `
INSERT INTO asset_allocations (user_id, stocks, bonds, cash, real_estate, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE
SET stocks = EXCLUDED.stocks,
    bonds = EXCLUDED.bonds,
    cash = EXCLUDED.cash,
    real_estate = EXCLUDED.real_estate,
    updated_at = EXCLUDED.updated_at
`
	_, err := db.ExecContext(ctx, q, a.UserID, a.Stocks, a.Bonds, a.Cash, a.RealEstate, a.UpdatedAt)
	return err
}
