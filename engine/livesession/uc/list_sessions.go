// Package uc holds the live-session use cases. Each use case receives the
// acting identity and role resolved by the gate chain; instructors are
// scoped to their own rows, admins see everything.
package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// ListSessions lists live sessions visible to the actor.
type ListSessions struct {
	store   store.Service
	actorID string
	role    auth.Role
}

// NewListSessions creates the list sessions use case.
func NewListSessions(storeSvc store.Service, actorID string, role auth.Role) *ListSessions {
	return &ListSessions{store: storeSvc, actorID: actorID, role: role}
}

// Execute returns the visible session rows.
func (uc *ListSessions) Execute(ctx context.Context) ([]store.Row, error) {
	q := store.Query{Select: livesession.Projection, Order: "starts_at.desc"}
	if uc.role != auth.RoleAdmin {
		q = q.Eq(livesession.OwnerColumn, uc.actorID)
	}
	return uc.store.Select(ctx, livesession.Table, q)
}
