package savings

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"capstack-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionListLimit = 100

// Service provides savings-plan operations.
//
// Money invariants:
// - saved_amount changes only alongside an inserted transaction row
// - money operations run in a transaction with the plan row locked
// - withdrawals from a locked plan are rejected; deposits are not
type Service struct {
	db *sql.DB
	// clock is injectable for deterministic tests.
	clock func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db, clock: time.Now}
}

// CreatePlan adds a named savings goal.
func (s *Service) CreatePlan(ctx context.Context, userID, name string, target decimal.Decimal) (Plan, error) {
	name = strings.TrimSpace(name)
	if userID == "" || name == "" {
		return Plan{}, ErrInvalidArgument
	}
	if target.IsNegative() || target.IsZero() {
		return Plan{}, ErrInvalidArgument
	}

	p := Plan{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         name,
		TargetAmount: target,
		SavedAmount:  decimal.Zero,
		CreatedAt:    s.clock().UTC(),
	}
	err := utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return insertPlanTx(ctx, tx, p)
	})
	if err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Status lists the user's plans with totals.
func (s *Service) Status(ctx context.Context, userID string) (Status, error) {
	if userID == "" {
		return Status{}, ErrInvalidArgument
	}
	plans, err := listPlans(ctx, s.db, userID)
	if err != nil {
		return Status{}, err
	}

	st := Status{Plans: plans, TotalSaved: decimal.Zero, TotalTarget: decimal.Zero}
	if st.Plans == nil {
		st.Plans = []Plan{}
	}
	for _, p := range plans {
		st.TotalSaved = st.TotalSaved.Add(p.SavedAmount)
		st.TotalTarget = st.TotalTarget.Add(p.TargetAmount)
		if p.Locked {
			st.LockedCount++
		}
	}
	return st, nil
}

// LockAll locks every plan the user owns and reports how many changed state.
func (s *Service) LockAll(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, ErrInvalidArgument
	}
	var n int64
	err := utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		n, err = setAllLockedTx(ctx, tx, userID, true)
		return err
	})
	return n, err
}

// Unlock unlocks a single plan.
func (s *Service) Unlock(ctx context.Context, userID, planID string) error {
	if userID == "" || planID == "" {
		return ErrInvalidArgument
	}
	return utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return setPlanLockedTx(ctx, tx, userID, planID, false)
	})
}

// AddTransaction posts a deposit or withdrawal against a plan and moves
// saved_amount atomically with the inserted row.
func (s *Service) AddTransaction(ctx context.Context, userID, planID string, kind TransactionType, amount decimal.Decimal, note string) (Transaction, Plan, error) {
	if userID == "" || planID == "" {
		return Transaction{}, Plan{}, ErrInvalidArgument
	}
	if kind != TransactionDeposit && kind != TransactionWithdraw {
		return Transaction{}, Plan{}, ErrInvalidArgument
	}
	if amount.IsNegative() || amount.IsZero() {
		return Transaction{}, Plan{}, ErrInvalidArgument
	}

	now := s.clock().UTC()
	t := Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanID:    planID,
		Type:      kind,
		Amount:    amount,
		Note:      strings.TrimSpace(note),
		CreatedAt: now,
	}

	var outPlan Plan
	err := utils.WithTx(ctx, s.db, nil, func(ctx context.Context, tx *sql.Tx) error {
		p, err := lockPlanRow(ctx, tx, userID, planID)
		if err != nil {
			return err
		}

		p, err = applyTransaction(p, kind, amount)
		if err != nil {
			return err
		}

		if err := updateSavedAmountTx(ctx, tx, p); err != nil {
			return err
		}
		if err := insertTransactionTx(ctx, tx, t); err != nil {
			return err
		}
		outPlan = p
		return nil
	})
	if err != nil {
		return Transaction{}, Plan{}, err
	}
	return t, outPlan, nil
}

// applyTransaction moves a plan's balance for one posted transaction.
// Deposits always land, even on a locked plan; withdrawals are rejected
// when the plan is locked or the balance is short.
func applyTransaction(p Plan, kind TransactionType, amount decimal.Decimal) (Plan, error) {
	switch kind {
	case TransactionDeposit:
		p.SavedAmount = p.SavedAmount.Add(amount)
	case TransactionWithdraw:
		if p.Locked {
			return Plan{}, ErrPlanLocked
		}
		if p.SavedAmount.LessThan(amount) {
			return Plan{}, ErrInsufficientFunds
		}
		p.SavedAmount = p.SavedAmount.Sub(amount)
	}
	return p, nil
}

// ListTransactions returns the most recent transactions for a user.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	if userID == "" {
		return nil, ErrInvalidArgument
	}
	out, err := listTransactions(ctx, s.db, userID, transactionListLimit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Transaction{}
	}
	return out, nil
}
