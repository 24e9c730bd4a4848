package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// GetCourse fetches a single course by id.
type GetCourse struct {
	store store.Service
	id    string
}

// NewGetCourse creates the get course use case.
func NewGetCourse(storeSvc store.Service, id string) *GetCourse {
	return &GetCourse{store: storeSvc, id: id}
}

// Execute returns the normalized course row, or NotFound.
func (uc *GetCourse) Execute(ctx context.Context) (store.Row, error) {
	row, err := uc.store.Get(ctx, course.Table, store.Query{Select: course.Projection}.Eq("id", uc.id))
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return nil, core.NotFoundf("course %s not found", uc.id)
		}
		return nil, err
	}
	return course.Normalize(row), nil
}
