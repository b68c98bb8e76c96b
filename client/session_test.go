package client_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/healthsecure/medichain-service/client"
	"github.com/healthsecure/medichain-service/pkg/profile"
	"github.com/healthsecure/medichain-service/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := client.NewMemoryStore()

	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	_, ok := store.User()
	require.False(t, ok)

	store.SetTokens("access-1", "refresh-1")
	store.SetUser(client.User{
		Email:    "jane@example.com",
		Role:     profile.Patient,
		Name:     "Jane Doe",
		HealthID: util.Pointer("HID-1234-5678"),
	})

	require.Equal(t, "access-1", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())

	user, ok := store.User()
	require.True(t, ok)
	require.Equal(t, profile.Patient, user.Role)
	require.Equal(t, "HID-1234-5678", *user.HealthID)

	store.SetAccessToken("access-2")
	require.Equal(t, "access-2", store.AccessToken())
	require.Equal(t, "refresh-1", store.RefreshToken())

	store.Clear()
	require.Empty(t, store.AccessToken())
	require.Empty(t, store.RefreshToken())
	_, ok = store.User()
	require.False(t, ok)
}

func TestFileStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "session.json")
	store := client.NewFileStore(path)

	require.Empty(t, store.AccessToken())

	store.SetTokens("access-1", "refresh-1")
	store.SetUser(client.User{Email: "doc@example.com", Role: profile.Doctor, Name: "Dr. John Smith"})

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A fresh store over the same file sees the persisted session.
	reopened := client.NewFileStore(path)
	require.Equal(t, "access-1", reopened.AccessToken())
	require.Equal(t, "refresh-1", reopened.RefreshToken())

	user, ok := reopened.User()
	require.True(t, ok)
	require.Equal(t, profile.Doctor, user.Role)

	reopened.Clear()
	require.Empty(t, store.AccessToken())
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
