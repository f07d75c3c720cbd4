package savings

import (
	"context"
	"database/sql"
	"errors"
)

// Assumes the savings_plans and savings_transactions tables from
// db/migrations. All queries are scoped by user_id.

func listPlans(ctx context.Context, db *sql.DB, userID string) ([]Plan, error) {
	const q = `
SELECT id, user_id, name, target_amount, saved_amount, locked, created_at
FROM savings_plans
WHERE user_id = $1
ORDER BY created_at
`
	rows, err := db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.TargetAmount, &p.SavedAmount, &p.Locked, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func insertPlanTx(ctx context.Context, tx *sql.Tx, p Plan) error {
	const q = `
INSERT INTO savings_plans (id, user_id, name, target_amount, saved_amount, locked, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := tx.ExecContext(ctx, q, p.ID, p.UserID, p.Name, p.TargetAmount, p.SavedAmount, p.Locked, p.CreatedAt)
	return err
}

// lockPlanRow serializes concurrent money operations per plan.
func lockPlanRow(ctx context.Context, tx *sql.Tx, userID, planID string) (Plan, error) {
	const q = `
SELECT id, user_id, name, target_amount, saved_amount, locked, created_at
FROM savings_plans
WHERE user_id = $1 AND id = $2
FOR UPDATE
`
	var p Plan
	err := tx.QueryRowContext(ctx, q, userID, planID).Scan(
		&p.ID, &p.UserID, &p.Name, &p.TargetAmount, &p.SavedAmount, &p.Locked, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, err
	}
	return p, nil
}

func setAllLockedTx(ctx context.Context, tx *sql.Tx, userID string, locked bool) (int64, error) {
	const q = `UPDATE savings_plans SET locked = $2 WHERE user_id = $1 AND locked <> $2`
	res, err := tx.ExecContext(ctx, q, userID, locked)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func setPlanLockedTx(ctx context.Context, tx *sql.Tx, userID, planID string, locked bool) error {
	const q = `UPDATE savings_plans SET locked = $3 WHERE user_id = $1 AND id = $2`
	res, err := tx.ExecContext(ctx, q, userID, planID, locked)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func updateSavedAmountTx(ctx context.Context, tx *sql.Tx, p Plan) error {
	const q = `UPDATE savings_plans SET saved_amount = $3 WHERE user_id = $1 AND id = $2`
	_, err := tx.ExecContext(ctx, q, p.UserID, p.ID, p.SavedAmount)
	return err
}

func insertTransactionTx(ctx context.Context, tx *sql.Tx, t Transaction) error {
	const q = `
INSERT INTO savings_transactions (id, user_id, plan_id, type, amount, note, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := tx.ExecContext(ctx, q, t.ID, t.UserID, t.PlanID, t.Type, t.Amount, t.Note, t.CreatedAt)
	return err
}

func listTransactions(ctx context.Context, db *sql.DB, userID string, limit int) ([]Transaction, error) {
	const q = `
SELECT id, user_id, plan_id, type, amount, note, created_at
FROM savings_transactions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.PlanID, &t.Type, &t.Amount, &t.Note, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
