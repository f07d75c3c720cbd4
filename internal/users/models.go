package users

import "time"

// User is a persisted account row. Guest accounts are real rows with
// IsGuest=true and an ExpiresAt; they are swept after expiry rather than
// accumulating forever.
type User struct {
	ID      string `json:"id" db:"id"`
	Email   string `json:"email,omitempty" db:"email"`
	Name    string `json:"name" db:"name"`
	IsGuest bool   `json:"isGuest" db:"is_guest"`

	// PINHash is a bcrypt hash of the 4-digit PIN. Empty for guests.
	// Never serialized.
	PINHash string `json:"-" db:"pin_hash"`

	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ExpiresAt *time.Time `json:"-" db:"expires_at"`
}
