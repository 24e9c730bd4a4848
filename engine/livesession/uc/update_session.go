package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// UpdateSession patches a live session. Ownership has already been gated.
type UpdateSession struct {
	store  store.Service
	id     string
	fields store.Row
}

// NewUpdateSession creates the update session use case.
func NewUpdateSession(storeSvc store.Service, id string, fields store.Row) *UpdateSession {
	return &UpdateSession{store: storeSvc, id: id, fields: fields}
}

// Execute applies the patch, or NotFound when the id matches nothing.
func (uc *UpdateSession) Execute(ctx context.Context) (store.Row, error) {
	if len(uc.fields) == 0 {
		return nil, core.Validationf("no fields to update")
	}
	// Identity and ownership are immutable through this surface.
	delete(uc.fields, "id")
	delete(uc.fields, livesession.OwnerColumn)
	row, err := uc.store.Update(ctx, livesession.Table, store.Query{}.Eq("id", uc.id), uc.fields)
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return nil, core.NotFoundf("live session %s not found", uc.id)
		}
		return nil, err
	}
	return row, nil
}
