// Package auth owns the role model, the per-request authorization context,
// and role resolution against the data service. HTTP gating built on top of
// it lives in engine/infra/server/middleware/auth.
package auth

// Role represents a granted access level. Identities without a profile row
// hold no role at all and are denied by the role gate.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// Valid checks if the role is a recognized value
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleInstructor
}

// In reports whether the role is part of the allow-set.
func (r Role) In(allowed ...Role) bool {
	for _, candidate := range allowed {
		if r == candidate {
			return true
		}
	}
	return false
}
