package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/healthsecure/medichain-service/client"
	"github.com/healthsecure/medichain-service/model"
	"github.com/stretchr/testify/require"
)

func TestFetchWithAuthRefreshAndRetry(t *testing.T) {
	t.Parallel()

	var resourceCalls, refreshCalls atomic.Int64
	var authHeaders []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			refreshCalls.Add(1)
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "R1", req["refresh"])
			// No rotation: only a new access token comes back.
			json.NewEncoder(w).Encode(map[string]string{"access": "A2"})

		case "/records/":
			resourceCalls.Add(1)
			authHeaders = append(authHeaders, r.Header.Get("Authorization"))
			if r.Header.Get("Authorization") != "Bearer A2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]map[string]any{})

		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	c := client.New(server.URL, store)

	records, err := c.ListRecords(context.Background())
	require.NoError(t, err)
	require.Empty(t, records)

	// Exactly one retry after exactly one refresh.
	require.EqualValues(t, 2, resourceCalls.Load())
	require.EqualValues(t, 1, refreshCalls.Load())
	require.Equal(t, []string{"Bearer A1", "Bearer A2"}, authHeaders)

	// The retry used the rotated access token while the refresh token,
	// unrotated by the server, was retained.
	require.Equal(t, "A2", store.AccessToken())
	require.Equal(t, "R1", store.RefreshToken())
}

func TestFetchWithAuthRefreshRotation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			json.NewEncoder(w).Encode(map[string]string{"access": "A2", "refresh": "R2"})
		case "/records/":
			if r.Header.Get("Authorization") != "Bearer A2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			json.NewEncoder(w).Encode([]map[string]any{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	c := client.New(server.URL, store)

	_, err := c.ListRecords(context.Background())
	require.NoError(t, err)
	require.Equal(t, "A2", store.AccessToken())
	require.Equal(t, "R2", store.RefreshToken())
}

func TestFetchWithAuthRefreshFailureClearsSession(t *testing.T) {
	t.Parallel()

	var resourceCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token is invalid or expired"})
		case "/records/":
			resourceCalls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("stale", "stale-refresh")
	c := client.New(server.URL, store)

	_, err := c.ListRecords(context.Background())
	require.ErrorIs(t, err, client.ErrSessionExpired)

	// Failed refresh means no retry: the original 401 is what surfaced.
	require.EqualValues(t, 1, resourceCalls.Load())

	// Fail-closed: the whole session is gone.
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	_, ok := store.User()
	require.False(t, ok)
}

func TestFetchWithAuthRetryTransportError(t *testing.T) {
	t.Parallel()

	var resourceCalls, refreshCalls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/token/refresh/":
			refreshCalls.Add(1)
			json.NewEncoder(w).Encode(map[string]string{"access": "A2"})

		case "/records/":
			if resourceCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			// Drop the connection mid-retry to force a transport error.
			hijacker, ok := w.(http.Hijacker)
			require.True(t, ok)
			conn, _, err := hijacker.Hijack()
			require.NoError(t, err)
			conn.Close()

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	c := client.New(server.URL, store)

	_, err := c.ListRecords(context.Background())

	// The retry's failure propagates as a transport error, not as an
	// expired session: the refresh just succeeded and the tokens are live.
	require.Error(t, err)
	require.NotErrorIs(t, err, client.ErrSessionExpired)
	require.EqualValues(t, 1, refreshCalls.Load())
	require.Equal(t, "A2", store.AccessToken())
	require.Equal(t, "R1", store.RefreshToken())
}

func TestRefreshAccessTokenWithoutRefreshToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetAccessToken("A1")
	c := client.New(server.URL, store)

	// Precondition failure: no network call, no session mutation.
	require.False(t, c.RefreshAccessToken(context.Background()))
	require.Equal(t, "A1", store.AccessToken())
}

func TestValidationErrorFromFieldMap(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string][]string{
			"email": {"A user with this email already exists."},
		})
	}))
	defer server.Close()

	c := client.New(server.URL, client.NewMemoryStore())

	_, err := c.RegisterPatient(context.Background(), registerPatientRequest("dup@example.com"))
	require.Error(t, err)

	var validationErr *client.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Error(), "already exists")
	require.Equal(t, []string{"A user with this email already exists."}, validationErr.Messages())
}

func registerPatientRequest(email string) model.RegisterPatientRequest {
	return model.RegisterPatientRequest{
		Email:     email,
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func TestSearchPatientNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Patient not found"})
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	c := client.New(server.URL, store)

	_, err := c.SearchPatient(context.Background(), "HID-0000-0000")
	require.ErrorIs(t, err, client.ErrPatientNotFound)
}

func TestLoginStoresSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"access":    "A1",
			"refresh":   "R1",
			"email":     "jane@example.com",
			"role":      "PATIENT",
			"name":      "Jane Doe",
			"health_id": "HID-1234-5678",
		})
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	c := client.New(server.URL, store)

	res, err := c.Login(context.Background(), "jane@example.com", "secret-password")
	require.NoError(t, err)
	require.Equal(t, "A1", res.Access)

	require.Equal(t, "A1", store.AccessToken())
	require.Equal(t, "R1", store.RefreshToken())

	user, ok := store.User()
	require.True(t, ok)
	require.Equal(t, "Jane Doe", user.Name)
	require.Equal(t, "HID-1234-5678", *user.HealthID)
}

func TestLogoutClearsSessionEvenOnFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	c := client.New(server.URL, store)

	require.NoError(t, c.Logout(context.Background()))
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
}
