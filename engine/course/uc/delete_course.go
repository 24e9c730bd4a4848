package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// DeleteCourse removes a course row by id.
type DeleteCourse struct {
	store store.Service
	id    string
}

// NewDeleteCourse creates the delete course use case.
func NewDeleteCourse(storeSvc store.Service, id string) *DeleteCourse {
	return &DeleteCourse{store: storeSvc, id: id}
}

// Execute deletes the row, or NotFound when the id matches nothing.
func (uc *DeleteCourse) Execute(ctx context.Context) error {
	err := uc.store.Delete(ctx, course.Table, store.Query{}.Eq("id", uc.id))
	if err != nil && core.IsKind(err, core.KindNotFound) {
		return core.NotFoundf("course %s not found", uc.id)
	}
	return err
}
