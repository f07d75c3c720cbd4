package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// Access invariant: IsGuest=true can never authorize a mutating endpoint;
// that is enforced by RequireUser, never by handler-level checks.
type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"userId"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name"`
	IsGuest bool   `json:"isGuest"`
}
