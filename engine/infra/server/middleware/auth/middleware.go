// Package auth implements the gate chain applied in front of every
// protected route: authenticate, resolve role, role-gate, and optionally
// ownership-gate. The ordering is fixed; a request failing an earlier gate
// never reaches a later one or the handler.
package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/identity"
	"github.com/RumanAkhtar/lms-app-backend/engine/infra/server/router"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	"github.com/RumanAkhtar/lms-app-backend/pkg/logger"
)

// Manager builds the gate middlewares from injected service handles, so the
// gates are independently testable with substitutable fakes.
type Manager struct {
	identity identity.Service
	resolver *auth.RoleResolver
	store    store.Service
}

// NewManager creates a new gate manager.
func NewManager(identitySvc identity.Service, resolver *auth.RoleResolver, storeSvc store.Service) *Manager {
	return &Manager{
		identity: identitySvc,
		resolver: resolver,
		store:    storeSvc,
	}
}

// Authenticate verifies the bearer credential and attaches the verified
// identity to the request context. It must run before any role or ownership
// gate: it establishes the subject for every subsequent decision.
func (m *Manager) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := extractBearerToken(c)
		if err != nil {
			router.RespondError(c, err)
			return
		}
		ident, err := m.identity.VerifyToken(c.Request.Context(), token)
		if err != nil {
			router.RespondError(c, err)
			return
		}
		ctx := auth.WithIdentity(c.Request.Context(), ident)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole resolves the caller's role and checks it against the
// allow-set. On success the resolved role is attached to the request
// context so downstream gates and handlers need no second lookup.
func (m *Manager) RequireRole(allowed ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := auth.IdentityFromContext(c.Request.Context())
		if !ok {
			router.RespondError(c, core.Unauthenticatedf("authentication required"))
			return
		}
		role, err := m.resolver.Resolve(c.Request.Context(), ident.ID)
		if err != nil {
			router.RespondError(c, err)
			return
		}
		if !role.In(allowed...) {
			log := logger.FromContext(c.Request.Context())
			log.Debug("role not in allow-set", "role", string(role), "path", c.FullPath())
			router.RespondError(c, core.Forbiddenf("insufficient role"))
			return
		}
		ctx := auth.WithRole(c.Request.Context(), role)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireOwnership checks that the target resource's owner column matches
// the acting identity. Admins bypass the lookup entirely. The check runs
// after the role gate and before any mutating handler logic: it is a
// read-before-write authorization check, and the data service is not
// assumed to enforce per-row authorization itself.
func (m *Manager) RequireOwnership(table, ownerColumn string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := auth.RoleFromContext(c.Request.Context())
		if !ok {
			router.RespondError(c, core.Forbiddenf("no role resolved"))
			return
		}
		if role == auth.RoleAdmin {
			c.Next()
			return
		}
		ident, ok := auth.IdentityFromContext(c.Request.Context())
		if !ok {
			router.RespondError(c, core.Unauthenticatedf("authentication required"))
			return
		}
		resourceID := c.Param("id")
		if resourceID == "" {
			router.RespondError(c, core.Validationf("resource id is required"))
			return
		}
		row, err := m.store.Get(c.Request.Context(), table, store.Query{Select: ownerColumn}.Eq("id", resourceID))
		if err != nil {
			// A missing resource is not revealed to non-owners.
			router.RespondError(c, core.WrapError(core.KindForbidden, "you do not own this resource", err))
			return
		}
		owner, _ := row[ownerColumn].(string)
		if owner == "" || owner != ident.ID {
			router.RespondError(c, core.Forbiddenf("you do not own this resource"))
			return
		}
		c.Next()
	}
}

// extractBearerToken extracts and validates the bearer credential.
func extractBearerToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", core.Unauthenticatedf("missing Authorization header")
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", core.Unauthenticatedf("invalid Authorization header format, expected: Bearer <token>")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", core.Unauthenticatedf("empty bearer token")
	}
	return token, nil
}
