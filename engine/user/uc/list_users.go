// Package uc holds the user-domain use cases.
package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
	"github.com/RumanAkhtar/lms-app-backend/engine/user"
)

// ListUsers lists profiles, optionally filtered by role.
type ListUsers struct {
	store store.Service
	role  string
}

// NewListUsers creates the list users use case. role may be empty for an
// unfiltered listing.
func NewListUsers(storeSvc store.Service, role string) *ListUsers {
	return &ListUsers{store: storeSvc, role: role}
}

// Execute returns the matching profile rows.
func (uc *ListUsers) Execute(ctx context.Context) ([]store.Row, error) {
	q := store.Query{Select: user.Projection, Order: "created_at.desc"}
	if uc.role != "" {
		q = q.Eq("role", uc.role)
	}
	return uc.store.Select(ctx, user.Table, q)
}

// NewListInstructors creates a listing restricted to instructor profiles.
func NewListInstructors(storeSvc store.Service) *ListUsers {
	return NewListUsers(storeSvc, string(auth.RoleInstructor))
}
