package uc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

func TestListUsers(t *testing.T) {
	t.Run("Should list all profiles without a filter", func(t *testing.T) {
		storeSvc := &fakeStore{selectRet: []store.Row{{"id": "u1"}, {"id": "u2"}}}

		rows, err := NewListUsers(storeSvc, "").Execute(t.Context())

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Equal(t, "profiles", storeSvc.lastTab)
		assert.Empty(t, storeSvc.lastQ.Filters)
		assert.Equal(t, "id,name,email,role,avatar,created_at", storeSvc.lastQ.Select)
	})

	t.Run("Should filter by role when given", func(t *testing.T) {
		storeSvc := &fakeStore{selectRet: []store.Row{}}

		_, err := NewListUsers(storeSvc, "admin").Execute(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "admin", storeSvc.lastQ.Filters["role"])
	})

	t.Run("Should fix the filter to instructor for instructor listings", func(t *testing.T) {
		storeSvc := &fakeStore{selectRet: []store.Row{}}

		_, err := NewListInstructors(storeSvc).Execute(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "instructor", storeSvc.lastQ.Filters["role"])
	})
}
