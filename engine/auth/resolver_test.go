package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/engine/store"
)

// fakeStore is a minimal store.Service for resolver tests.
type fakeStore struct {
	getRow  store.Row
	getErr  error
	lastQ   store.Query
	lastTab string
}

func (f *fakeStore) Select(context.Context, string, store.Query) ([]store.Row, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Get(_ context.Context, table string, q store.Query) (store.Row, error) {
	f.lastTab = table
	f.lastQ = q
	return f.getRow, f.getErr
}

func (f *fakeStore) Insert(context.Context, string, store.Row) (store.Row, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Update(context.Context, string, store.Query, store.Row) (store.Row, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeStore) Delete(context.Context, string, store.Query) error {
	return errors.New("not implemented")
}

func TestRoleResolverResolve(t *testing.T) {
	t.Run("Should resolve the role from the profile row", func(t *testing.T) {
		fake := &fakeStore{getRow: store.Row{"role": "instructor"}}
		resolver := NewRoleResolver(fake)

		role, err := resolver.Resolve(t.Context(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, RoleInstructor, role)
		assert.Equal(t, "profiles", fake.lastTab)
		assert.Equal(t, "user-1", fake.lastQ.Filters["id"])
		assert.Equal(t, "role", fake.lastQ.Select)
	})

	t.Run("Should deny with Forbidden when no profile exists", func(t *testing.T) {
		fake := &fakeStore{getErr: core.NotFoundf("no matching record in profiles")}
		resolver := NewRoleResolver(fake)

		_, err := resolver.Resolve(t.Context(), "user-2")

		require.Error(t, err)
		assert.Equal(t, core.KindForbidden, core.KindOf(err))
	})

	t.Run("Should deny with Forbidden when the lookup fails", func(t *testing.T) {
		fake := &fakeStore{getErr: core.Upstreamf(errors.New("boom"), "data service call failed")}
		resolver := NewRoleResolver(fake)

		_, err := resolver.Resolve(t.Context(), "user-3")

		require.Error(t, err)
		assert.Equal(t, core.KindForbidden, core.KindOf(err))
	})

	t.Run("Should deny when the profile carries an empty role", func(t *testing.T) {
		fake := &fakeStore{getRow: store.Row{"role": ""}}
		resolver := NewRoleResolver(fake)

		_, err := resolver.Resolve(t.Context(), "user-4")

		require.Error(t, err)
		assert.Equal(t, core.KindForbidden, core.KindOf(err))
	})
}

func TestRole(t *testing.T) {
	t.Run("Should validate known roles", func(t *testing.T) {
		assert.True(t, RoleAdmin.Valid())
		assert.True(t, RoleInstructor.Valid())
		assert.False(t, Role("student").Valid())
	})

	t.Run("Should check allow-set membership", func(t *testing.T) {
		assert.True(t, RoleInstructor.In(RoleAdmin, RoleInstructor))
		assert.False(t, RoleInstructor.In(RoleAdmin))
		assert.False(t, Role("").In(RoleAdmin, RoleInstructor))
	})
}

func TestContext(t *testing.T) {
	t.Run("Should round-trip role through context", func(t *testing.T) {
		ctx := WithRole(t.Context(), RoleAdmin)

		role, ok := RoleFromContext(ctx)

		require.True(t, ok)
		assert.Equal(t, RoleAdmin, role)
	})

	t.Run("Should report absence of a role", func(t *testing.T) {
		_, ok := RoleFromContext(t.Context())
		assert.False(t, ok)
	})
}
