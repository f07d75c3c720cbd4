package logger

import (
	"context"
	"log/slog"
	"os"
)

// New returns the process-wide JSON logger. Guest-heavy traffic makes the
// access path noisy, so the info level is the floor outside local and dev.
func New(appEnv string) *slog.Logger {
	level := slog.LevelInfo
	if appEnv == "local" || appEnv == "dev" {
		level = slog.LevelDebug
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

type ctxKey struct{}

// With stores a logger in context. The request middleware uses it to
// carry a request_id-scoped child down into the services.
func With(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From gets the logger from context, falling back to slog.Default().
// Services log through this so cache and sweep warnings land on the
// request that triggered them.
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}
