// Package uc holds the course-domain use cases.
package uc

import (
	"context"

	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// ListCourses lists all courses with the instructor name flattened in.
type ListCourses struct {
	store store.Service
}

// NewListCourses creates the list courses use case.
func NewListCourses(storeSvc store.Service) *ListCourses {
	return &ListCourses{store: storeSvc}
}

// Execute returns every course row, normalized for response shaping.
func (uc *ListCourses) Execute(ctx context.Context) ([]store.Row, error) {
	rows, err := uc.store.Select(ctx, course.Table, store.Query{
		Select: course.Projection,
		Order:  "created_at.desc",
	})
	if err != nil {
		return nil, err
	}
	return course.NormalizeAll(rows), nil
}
