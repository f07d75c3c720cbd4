package auth

import (
	"strings"
	"time"
)

// Kind is the per-request identity classification. Exactly one of three
// states; recomputed fresh for every request from the bearer token alone.
type Kind int

const (
	KindAnonymous Kind = iota
	KindGuest
	KindAuthenticated
)

func (k Kind) String() string {
	switch k {
	case KindGuest:
		return "guest"
	case KindAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Identity is the transient classification attached to a request. It is
// derived, never stored; UserID/Email/Name are set only for Guest and
// Authenticated kinds.
type Identity struct {
	Kind   Kind
	UserID string
	Email  string
	Name   string
}

// Anonymous is the zero classification.
var Anonymous = Identity{Kind: KindAnonymous}

// Classify maps a raw Authorization header value to an Identity.
//
// Every failure mode downgrades to Anonymous: missing header, missing
// bearer segment, bad signature, expired token. This is deliberate — read
// endpoints stay usable without a session, and the strict path is a
// separate policy (RequireUser).
func (m *Manager) Classify(header string, now time.Time) Identity {
	raw := strings.TrimSpace(header)
	if raw == "" || !strings.HasPrefix(raw, bearerPrefix) {
		return Anonymous
	}
	tok := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
	if tok == "" {
		return Anonymous
	}

	claims, err := m.Verify(tok, now)
	if err != nil {
		return Anonymous
	}

	kind := KindAuthenticated
	if claims.IsGuest {
		kind = KindGuest
	}
	return Identity{
		Kind:   kind,
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
}
