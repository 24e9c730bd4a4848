package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RumanAkhtar/lms-app-backend/engine/core"
	"github.com/RumanAkhtar/lms-app-backend/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&config.DataConfig{
		URL:        server.URL,
		ServiceKey: config.SensitiveString("data-key"),
		Timeout:    2 * time.Second,
	})
}

func TestSelect(t *testing.T) {
	t.Run("Should render projection and equality filters", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
			assert.Equal(t, "id,role", r.URL.Query().Get("select"))
			assert.Equal(t, "eq.instructor", r.URL.Query().Get("role"))
			assert.Equal(t, "data-key", r.Header.Get("apikey"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{{"id": "p1", "role": "instructor"}})
		})

		rows, err := client.Select(t.Context(), "profiles", Query{
			Select:  "id,role",
			Filters: map[string]string{"role": "instructor"},
		})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "p1", rows[0]["id"])
	})

	t.Run("Should render order and limit", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{})
		})

		_, err := client.Select(t.Context(), "courses", Query{Order: "created_at.desc", Limit: 5})

		require.NoError(t, err)
	})

	t.Run("Should classify service failures as UpstreamError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.Select(t.Context(), "courses", Query{})

		require.Error(t, err)
		assert.Equal(t, core.KindUpstream, core.KindOf(err))
	})
}

func TestGet(t *testing.T) {
	t.Run("Should return the single matching row", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.c1", r.URL.Query().Get("id"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{{"id": "c1"}})
		})

		row, err := client.Get(t.Context(), "courses", Query{}.Eq("id", "c1"))

		require.NoError(t, err)
		assert.Equal(t, "c1", row["id"])
	})

	t.Run("Should return NotFound for an empty result", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{})
		})

		_, err := client.Get(t.Context(), "courses", Query{}.Eq("id", "missing"))

		require.Error(t, err)
		assert.Equal(t, core.KindNotFound, core.KindOf(err))
	})
}

func TestInsert(t *testing.T) {
	t.Run("Should post the row and return the representation", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "return=representation", r.Header.Get("Prefer"))
			var body Row
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Intro", body["title"])
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode([]Row{{"id": "c1", "title": "Intro", "status": "draft"}})
		})

		row, err := client.Insert(t.Context(), "courses", Row{"title": "Intro"})

		require.NoError(t, err)
		assert.Equal(t, "draft", row["status"])
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Should patch matching rows", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "eq.s1", r.URL.Query().Get("id"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{{"id": "s1", "title": "Renamed"}})
		})

		row, err := client.Update(t.Context(), "live_sessions", Query{}.Eq("id", "s1"), Row{"title": "Renamed"})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", row["title"])
	})

	t.Run("Should return NotFound when nothing matched", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{})
		})

		_, err := client.Update(t.Context(), "live_sessions", Query{}.Eq("id", "ghost"), Row{"title": "x"})

		require.Error(t, err)
		assert.Equal(t, core.KindNotFound, core.KindOf(err))
	})
}

func TestDelete(t *testing.T) {
	t.Run("Should delete matching rows", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{{"id": "s1"}})
		})

		err := client.Delete(t.Context(), "live_sessions", Query{}.Eq("id", "s1"))

		require.NoError(t, err)
	})

	t.Run("Should return NotFound when nothing matched", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]Row{})
		})

		err := client.Delete(t.Context(), "live_sessions", Query{}.Eq("id", "ghost"))

		require.Error(t, err)
		assert.Equal(t, core.KindNotFound, core.KindOf(err))
	})
}

func TestQueryEq(t *testing.T) {
	t.Run("Should not mutate the receiver", func(t *testing.T) {
		base := Query{Filters: map[string]string{"a": "1"}}
		derived := base.Eq("b", "2")

		assert.Len(t, base.Filters, 1)
		assert.Len(t, derived.Filters, 2)
	})
}
