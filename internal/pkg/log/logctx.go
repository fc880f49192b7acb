// log carries a request-scoped *slog.Logger through context.Context.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into stores l in ctx.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger stored in ctx, or slog.Default().
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// With enriches the logger from ctx with attrs and stores the result in a child context.
// Used by the auth gate to attach user_id/role once the bearer token is verified.
func With(ctx context.Context, attrs ...any) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	return Into(ctx, From(ctx).With(attrs...))
}
