package auth

import (
	"context"
	"errors"
)

type ctxKey int

const ctxIdentity ctxKey = iota

// WithIdentity attaches a request identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// IdentityFrom returns the identity attached by the middleware, or
// Anonymous when none was attached.
func IdentityFrom(ctx context.Context) Identity {
	if v, ok := ctx.Value(ctxIdentity).(Identity); ok {
		return v
	}
	return Anonymous
}

// UserID returns the authenticated or guest subject id from context.
func UserID(ctx context.Context) (string, error) {
	id := IdentityFrom(ctx)
	if id.Kind == KindAnonymous || id.UserID == "" {
		return "", errors.New("user id not in context")
	}
	return id.UserID, nil
}
