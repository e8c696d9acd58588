package http

import (
	"context"

	"raitha-mithra-backend/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity stores the verified caller identity in the request context.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the caller identity placed by the auth middleware.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}
