package savings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrPlanLocked        = errors.New("plan is locked")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// Plan is a named savings goal. SavedAmount only moves through transaction
// rows; a locked plan accepts deposits but rejects withdrawals.
type Plan struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"-" db:"user_id"`
	Name         string          `json:"name" db:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount" db:"target_amount"`
	SavedAmount  decimal.Decimal `json:"savedAmount" db:"saved_amount"`
	Locked       bool            `json:"locked" db:"locked"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

// Transaction is an immutable movement of money into or out of a plan.
type Transaction struct {
	ID        string          `json:"id" db:"id"`
	UserID    string          `json:"-" db:"user_id"`
	PlanID    string          `json:"planId" db:"plan_id"`
	Type      TransactionType `json:"type" db:"type"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Note      string          `json:"note,omitempty" db:"note"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// Status is the aggregate view served by GET /savings/status.
type Status struct {
	Plans       []Plan          `json:"plans"`
	TotalSaved  decimal.Decimal `json:"totalSaved"`
	TotalTarget decimal.Decimal `json:"totalTarget"`
	LockedCount int             `json:"lockedCount"`
}
