package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// DeleteSession removes a live session by id. Ownership has already been
// gated.
type DeleteSession struct {
	store store.Service
	id    string
}

// NewDeleteSession creates the delete session use case.
func NewDeleteSession(storeSvc store.Service, id string) *DeleteSession {
	return &DeleteSession{store: storeSvc, id: id}
}

// Execute deletes the row, or NotFound when the id matches nothing.
func (uc *DeleteSession) Execute(ctx context.Context) error {
	err := uc.store.Delete(ctx, livesession.Table, store.Query{}.Eq("id", uc.id))
	if err != nil && core.IsKind(err, core.KindNotFound) {
		return core.NotFoundf("live session %s not found", uc.id)
	}
	return err
}
