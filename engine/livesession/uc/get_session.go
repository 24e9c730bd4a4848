package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// GetSession fetches a single live session by id. Ownership has already
// been gated before this runs.
type GetSession struct {
	store store.Service
	id    string
}

// NewGetSession creates the get session use case.
func NewGetSession(storeSvc store.Service, id string) *GetSession {
	return &GetSession{store: storeSvc, id: id}
}

// Execute returns the session row, or NotFound.
func (uc *GetSession) Execute(ctx context.Context) (store.Row, error) {
	row, err := uc.store.Get(ctx, livesession.Table, store.Query{Select: livesession.Projection}.Eq("id", uc.id))
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return nil, core.NotFoundf("live session %s not found", uc.id)
		}
		return nil, err
	}
	return row, nil
}
