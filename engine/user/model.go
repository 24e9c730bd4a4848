// Package user covers profiles: listing them for administrators and
// provisioning new instructor accounts.
package user

import (
	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
)

// Table is the data-service table holding profile rows.
const Table = "profiles"

// Projection is the field set returned for profile reads.
const Projection = "id,name,email,role,avatar,created_at"

// Profile mirrors a profile row. Its id always equals an existing identity
// id; the provisioning workflow's rollback maintains that invariant, not a
// database constraint visible to this system.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      auth.Role `json:"role"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
}
