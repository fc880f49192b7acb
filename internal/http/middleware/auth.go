package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/credit-dispute/internal/http/errors"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/pkg/log"
	"github.com/pribylovaa/credit-dispute/internal/service"
)

// TokenValidator verifies an access token.
type TokenValidator interface {
	ValidateAccessToken(token string) (models.Identity, error)
}

// Authenticate requires "Authorization: Bearer <access token>". A verified
// identity is stored in ctx and attached to the request logger; anything
// else is answered with 401.
func Authenticate(v TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apierrors.WriteError(w, r, fmt.Errorf("missing bearer token: %w", service.ErrInvalidToken))
				return
			}

			id, err := v.ValidateAccessToken(token)
			if err != nil {
				log.From(r.Context()).Info("access_token_rejected",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxIdentity, id)
			ctx = log.With(ctx,
				slog.String("user_id", id.UserID.String()),
				slog.String("role", string(id.Role)),
			)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole answers 403 unless the authenticated caller has role.
// Must run after Authenticate.
func RequireRole(role models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok {
				apierrors.WriteError(w, r, service.ErrInvalidToken)
				return
			}
			if id.Role != role {
				apierrors.WriteError(w, r, service.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom returns the caller stored by Authenticate.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(ctxIdentity).(models.Identity)
	return id, ok
}

// WithIdentity stores id in ctx. Used by tests of downstream handlers.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}
