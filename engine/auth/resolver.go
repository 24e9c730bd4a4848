package auth

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

const profilesTable = "profiles"

// RoleResolver looks up the authenticated identity's role in the data
// service. There is no caching: every request resolves the role freshly so
// a demotion takes effect on the very next request.
type RoleResolver struct {
	store store.Service
}

// NewRoleResolver creates a role resolver backed by the data service.
func NewRoleResolver(storeSvc store.Service) *RoleResolver {
	return &RoleResolver{store: storeSvc}
}

// Resolve returns the role granted to the identity. An authenticated
// identity with no profile row holds no role and is denied, not treated as
// anonymous: it already passed authentication, so the denial is Forbidden.
// Lookup failures deny the same way rather than letting a flaky data
// service grant access.
func (r *RoleResolver) Resolve(ctx context.Context, identityID string) (Role, error) {
	row, err := r.store.Get(ctx, profilesTable, store.Query{Select: "role"}.Eq("id", identityID))
	if err != nil {
		if !core.IsKind(err, core.KindNotFound) {
			log := logger.FromContext(ctx)
			log.Error("role lookup failed", "identity_id", identityID, "error", err)
		}
		return "", core.WrapError(core.KindForbidden, "no role granted", err)
	}
	role, ok := row["role"].(string)
	if !ok || role == "" {
		return "", core.Forbiddenf("no role granted")
	}
	return Role(role), nil
}
