package handler

import (
	"context"
	"net/http"

	"github.com/shareshelf/shareshelf/internal/domain"
)

type contextKey string

const actorContextKey contextKey = "actor"

// WithActor stores the authenticated user on the context. The auth middleware
// calls this after verifying the bearer token.
func WithActor(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, actorContextKey, user)
}

// ActorFromContext returns the authenticated user, or nil when the request
// is anonymous. Services treat a nil actor as unauthenticated.
func ActorFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(actorContextKey).(*domain.User)
	return user
}

// RequireActor returns the authenticated user, writing a 401 response when
// the request carries no identity. Handlers behind the auth middleware use
// this as the first step.
func RequireActor(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	actor := ActorFromContext(r.Context())
	if actor == nil {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return nil, false
	}
	return actor, true
}
