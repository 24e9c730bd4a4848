package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// GetCurriculum fetches a course with its nested modules, lessons and
// lesson files in one embedded read.
type GetCurriculum struct {
	store store.Service
	id    string
}

// NewGetCurriculum creates the get curriculum use case.
func NewGetCurriculum(storeSvc store.Service, id string) *GetCurriculum {
	return &GetCurriculum{store: storeSvc, id: id}
}

// Execute returns the nested curriculum, or NotFound.
func (uc *GetCurriculum) Execute(ctx context.Context) (store.Row, error) {
	row, err := uc.store.Get(ctx, course.Table, store.Query{Select: course.CurriculumProjection}.Eq("id", uc.id))
	if err != nil {
		if core.IsKind(err, core.KindNotFound) {
			return nil, core.NotFoundf("course %s not found", uc.id)
		}
		return nil, err
	}
	// An embedded read on a course with no modules yields null, not [].
	if row["modules"] == nil {
		row["modules"] = []store.Row{}
	}
	return row, nil
}
