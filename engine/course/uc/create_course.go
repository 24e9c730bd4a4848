package uc

import (
	"context"
	"strings"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/course"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// CreateCourse inserts a new course row. The body is free-form: caller
// fields are passed through with a server-assigned default status when
// absent.
type CreateCourse struct {
	store  store.Service
	fields store.Row
}

// NewCreateCourse creates the create course use case.
func NewCreateCourse(storeSvc store.Service, fields store.Row) *CreateCourse {
	return &CreateCourse{store: storeSvc, fields: fields}
}

// Execute validates the minimum shape, applies defaults and inserts.
func (uc *CreateCourse) Execute(ctx context.Context) (store.Row, error) {
	title, _ := uc.fields["title"].(string)
	if strings.TrimSpace(title) == "" {
		return nil, core.Validationf("title is required")
	}
	row := make(store.Row, len(uc.fields)+1)
	for k, v := range uc.fields {
		row[k] = v
	}
	if status, ok := row["status"].(string); !ok || status == "" {
		row["status"] = course.DefaultStatus
	}
	return uc.store.Insert(ctx, course.Table, row)
}
