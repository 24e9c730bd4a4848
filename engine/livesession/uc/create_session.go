package uc

import (
	"context"
	"strings"

	"github.com/RumanAkhtar/lms-app-backend/engine/auth"
	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/livesession"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// CreateSession inserts a new live session. For instructors the owner is
// forced to the acting identity; only admins may create sessions on behalf
// of someone else.
type CreateSession struct {
	store   store.Service
	actorID string
	role    auth.Role
	fields  store.Row
}

// NewCreateSession creates the create session use case.
func NewCreateSession(storeSvc store.Service, actorID string, role auth.Role, fields store.Row) *CreateSession {
	return &CreateSession{store: storeSvc, actorID: actorID, role: role, fields: fields}
}

// Execute validates, applies defaults and ownership, and inserts.
func (uc *CreateSession) Execute(ctx context.Context) (store.Row, error) {
	title, _ := uc.fields["title"].(string)
	if strings.TrimSpace(title) == "" {
		return nil, core.Validationf("title is required")
	}
	row := make(store.Row, len(uc.fields)+2)
	for k, v := range uc.fields {
		row[k] = v
	}
	if status, ok := row["status"].(string); !ok || status == "" {
		row["status"] = livesession.DefaultStatus
	}
	if uc.role != auth.RoleAdmin {
		row[livesession.OwnerColumn] = uc.actorID
	} else if owner, ok := row[livesession.OwnerColumn].(string); !ok || owner == "" {
		return nil, core.Validationf("instructor_id is required")
	}
	return uc.store.Insert(ctx, livesession.Table, row)
}
