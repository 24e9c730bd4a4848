package auth

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
)

// Context keys for the per-request authorization context. The values are
// written once by the gate chain and immutable afterwards; nothing here is
// persisted or shared across requests.
type (
	identityKey struct{}
	roleKey     struct{}
)

// WithIdentity adds the verified identity to the context
func WithIdentity(ctx context.Context, ident *identity.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// IdentityFromContext retrieves the verified identity from context
func IdentityFromContext(ctx context.Context) (*identity.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(*identity.Identity)
	return ident, ok
}

// WithRole adds the resolved role to the context
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromContext retrieves the resolved role from context
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleKey{}).(Role)
	return role, ok
}
