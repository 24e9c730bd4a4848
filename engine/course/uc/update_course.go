package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// UpdateCourse patches an existing course row.
type UpdateCourse struct {
	store  store.Service
	id     string
	fields store.Row
}

// NewUpdateCourse creates the update course use case.
func NewUpdateCourse(storeSvc store.Service, id string, fields store.Row) *UpdateCourse {
	return &UpdateCourse{store: storeSvc, id: id, fields: fields}
}

// Execute applies the patch, or NotFound when the id matches nothing.
func (uc *UpdateCourse) Execute(ctx context.Context) (store.Row, error) {
	if len(uc.fields) == 0 {
		return nil, core.Validationf("no fields to update")
	}
	// The record id is assigned at creation and immutable.
	delete(uc.fields, "id")
	row, err := uc.store.Update(ctx, course.Table, store.Query{}.Eq("id", uc.id), uc.fields)
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return nil, core.NotFoundf("course %s not found", uc.id)
		}
		return nil, err
	}
	return row, nil
}
