package identity

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
	return NewClient(&config.IdentityConfig{
		URL:        server.URL,
		ServiceKey: config.SensitiveString("service-key"),
		Timeout:    2 * time.Second,
	})
}

func TestVerifyToken(t *testing.T) {
	t.Run("Should return the identity for a valid credential", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			assert.Equal(t, "service-key", r.Header.Get("apikey"))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"id": "user-1", "email": "u@example.com"})
		})

		ident, err := client.VerifyToken(t.Context(), "user-token")

		require.NoError(t, err)
		assert.Equal(t, "user-1", ident.ID)
		assert.Equal(t, "u@example.com", ident.Email)
	})

	t.Run("Should classify a rejected credential as Unauthenticated", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.VerifyToken(t.Context(), "bad-token")

		require.Error(t, err)
		assert.Equal(t, core.KindUnauthenticated, core.KindOf(err))
	})

	t.Run("Should treat an empty identity as Unauthenticated", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{})
		})

		_, err := client.VerifyToken(t.Context(), "token")

		require.Error(t, err)
		assert.Equal(t, core.KindUnauthenticated, core.KindOf(err))
	})
}

func TestCreateAccount(t *testing.T) {
	t.Run("Should create an account with the service-role credential", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/auth/v1/admin/users", r.URL.Path)
			assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@x.com", body["email"])
			assert.Equal(t, true, body["email_confirm"])
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "new-id", "email": "ana@x.com"})
		})

		ident, err := client.CreateAccount(t.Context(), "ana@x.com")

		require.NoError(t, err)
		assert.Equal(t, "new-id", ident.ID)
	})

	t.Run("Should classify duplicate accounts as Conflict", func(t *testing.T) {
		for _, status := range []int{http.StatusConflict, http.StatusUnprocessableEntity} {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})

			_, err := client.CreateAccount(t.Context(), "dup@x.com")

			require.Error(t, err)
			assert.Equal(t, core.KindConflict, core.KindOf(err))
		}
	})

	t.Run("Should classify other rejections as UpstreamError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.CreateAccount(t.Context(), "ana@x.com")

		require.Error(t, err)
		assert.Equal(t, core.KindUpstream, core.KindOf(err))
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("Should delete by id", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusOK)
		})

		err := client.DeleteAccount(t.Context(), "user-9")

		require.NoError(t, err)
		assert.Equal(t, "/auth/v1/admin/users/user-9", gotPath)
	})

	t.Run("Should classify failures as UpstreamError", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		err := client.DeleteAccount(t.Context(), "user-9")

		require.Error(t, err)
		assert.Equal(t, core.KindUpstream, core.KindOf(err))
	})
}
