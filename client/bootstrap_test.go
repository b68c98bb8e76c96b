package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/healthsecure/medichain-service/client"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWithoutTokens(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	c := client.New(server.URL, client.NewMemoryStore())

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusUnauthenticated, result.Status)
	require.Equal(t, "/login", result.RedirectPath)

	// No session means no network round trip at all.
	require.EqualValues(t, 0, requests.Load())
}

func TestBootstrapMissingAccessToken(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	// A refresh token alone is not a session: no access token means login,
	// without touching the network.
	store := client.NewMemoryStore()
	store.SetTokens("", "R1")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Patient, Name: "Jane Doe"})

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusUnauthenticated, result.Status)
	require.Equal(t, "/login", result.RedirectPath)
	require.EqualValues(t, 0, requests.Load())
}

func TestBootstrapTokensWithoutCachedUser(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	// A lingering token with no cached user is an inconsistent session.
	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusUnauthenticated, result.Status)
	require.Equal(t, "/login", result.RedirectPath)
	require.EqualValues(t, 0, requests.Load())
}

func TestBootstrapWrongCachedRole(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	store.SetUser(client.User{Email: "doc@example.com", Role: profile.Doctor, Name: "Dr. John Smith"})

	c := client.New(server.URL, store)

	// A doctor landing on the patient dashboard is sent to the doctor
	// dashboard, not to login.
	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusWrongRole, result.Status)
	require.Equal(t, "/dashboard/doctor", result.RedirectPath)
	require.EqualValues(t, 0, requests.Load())
}

func TestBootstrapWrongRoleFromProfile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/profile/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"role": "PATIENT",
			"profile": map[string]any{
				"health_id":  "HID-1234-5678",
				"first_name": "Jane",
				"last_name":  "Doe",
			},
		})
	}))
	defer server.Close()

	// The cached role matches, but the server disagrees: the fresh
	// profile wins the role check.
	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Doctor, Name: "Jane Doe"})

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Doctor)
	require.Equal(t, client.StatusWrongRole, result.Status)
	require.Equal(t, "/dashboard/patient", result.RedirectPath)
	require.NotNil(t, result.Profile)
	require.Equal(t, profile.Patient, result.Profile.Role)
}

func TestBootstrapReady(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"role": "PATIENT",
			"profile": map[string]any{
				"health_id":  "HID-1234-5678",
				"first_name": "Jane",
				"last_name":  "Doe",
				"email":      "jane@example.com",
			},
		})
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Patient, Name: "Jane Doe"})

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusReady, result.Status)
	require.Empty(t, result.RedirectPath)
	require.NotNil(t, result.Profile)
	require.NotNil(t, result.Profile.Patient)
	require.Equal(t, "HID-1234-5678", result.Profile.Patient.HealthID)
	require.Equal(t, "Jane Doe", result.User.Name)
}

func TestBootstrapExpiredSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("stale", "stale-refresh")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Patient})

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusUnauthenticated, result.Status)
	require.Equal(t, "/login", result.RedirectPath)
	require.Empty(t, store.AccessToken())
}

func TestBootstrapExpiredSessionWithoutRefreshToken(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	// No refresh token, so the fail-closed refresh path never runs: the
	// bootstrap itself must drop the stale access token before redirecting.
	store := client.NewMemoryStore()
	store.SetAccessToken("stale")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Patient})

	c := client.New(server.URL, store)

	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusUnauthenticated, result.Status)
	require.Equal(t, "/login", result.RedirectPath)
	require.Empty(t, store.AccessToken())
	_, ok := store.User()
	require.False(t, ok)
}

func TestBootstrapProfileFetchFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
	}))
	defer server.Close()

	store := client.NewMemoryStore()
	store.SetTokens("A1", "R1")
	store.SetUser(client.User{Email: "jane@example.com", Role: profile.Patient})

	c := client.New(server.URL, store)

	// A profile failure that is not an auth failure still logs out: a
	// session whose profile cannot load is unusable.
	result := c.Bootstrap(context.Background(), profile.Patient)
	require.Equal(t, client.StatusFailed, result.Status)
	require.Equal(t, "/login", result.RedirectPath)
	require.Error(t, result.Err)
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
}
