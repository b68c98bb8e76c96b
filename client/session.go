package client

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/healthsecure/medichain-service/pkg/profile"
)

// User is the login projection cached alongside the tokens. It is a
// low-fidelity snapshot: role routing may rely on it, anything richer must
// come from a fresh profile fetch.
type User struct {
	Email      string       `json:"email"`
	Role       profile.Role `json:"role"`
	Name       string       `json:"name"`
	HealthID   *string      `json:"health_id,omitempty"`
	DoctorID   *string      `json:"doctor_id,omitempty"`
	IsVerified *bool        `json:"is_verified,omitempty"`
}

// SessionStore holds the access token, refresh token and cached user for one
// authenticated session. Implementations must be safe for concurrent use.
type SessionStore interface {
	AccessToken() string
	RefreshToken() string
	User() (User, bool)
	SetTokens(accessToken, refreshToken string)
	SetAccessToken(accessToken string)
	SetUser(user User)
	Clear()
}

type memoryStore struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *User
}

// NewMemoryStore returns an in-memory SessionStore. Sessions do not survive
// process restarts.
func NewMemoryStore() SessionStore {
	return &memoryStore{}
}

func (s *memoryStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *memoryStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

func (s *memoryStore) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *memoryStore) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

func (s *memoryStore) SetAccessToken(accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = accessToken
}

func (s *memoryStore) SetUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

func (s *memoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
}

type sessionFile struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user,omitempty"`
}

type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a SessionStore persisted as a JSON file, created with
// owner-only permissions. Best effort: write failures drop the session
// rather than erroring out of the token path.
func NewFileStore(path string) SessionStore {
	return &fileStore{path: path}
}

func (s *fileStore) load() sessionFile {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return sessionFile{}
	}
	var session sessionFile
	if err = json.Unmarshal(data, &session); err != nil {
		return sessionFile{}
	}
	return session
}

func (s *fileStore) save(session sessionFile) {
	data, err := json.Marshal(session)
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

func (s *fileStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().AccessToken
}

func (s *fileStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().RefreshToken
}

func (s *fileStore) User() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.load()
	if session.User == nil {
		return User{}, false
	}
	return *session.User, true
}

func (s *fileStore) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.load()
	session.AccessToken = accessToken
	session.RefreshToken = refreshToken
	s.save(session)
}

func (s *fileStore) SetAccessToken(accessToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.load()
	session.AccessToken = accessToken
	s.save(session)
}

func (s *fileStore) SetUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session := s.load()
	session.User = &user
	s.save(session)
}

func (s *fileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}
