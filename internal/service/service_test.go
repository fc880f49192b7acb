package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/config"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"github.com/pribylovaa/credit-dispute/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:         "unit-secret",
		AccessTokenTTL:    15 * time.Minute,
		RefreshTokenTTL:   7 * 24 * time.Hour,
		Issuer:            "credit-dispute",
		Audience:          []string{"credit-dispute-web"},
		BcryptCost:        bcrypt.MinCost,
		PasswordMinLength: 6,
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	return New(st, testCfg()), st
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

func userIdentity(id uuid.UUID) models.Identity {
	return models.Identity{UserID: id, Email: "user@example.com", Role: models.RoleUser}
}

func adminIdentity() models.Identity {
	return models.Identity{UserID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}
}

// memStore keeps users and refresh tokens in memory. Only the methods used
// by the session lifecycle are implemented.
type memStore struct {
	storage.Storage

	mu     sync.Mutex
	users  map[uuid.UUID]*models.User
	tokens map[string]models.RefreshToken
}

func newMemStore() *memStore {
	return &memStore{
		users:  make(map[uuid.UUID]*models.User),
		tokens: make(map[string]models.RefreshToken),
	}
}

func (m *memStore) SaveUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return storage.ErrAlreadyExists
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) SaveRefreshToken(_ context.Context, t *models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tokens[t.TokenHash]; ok {
		return storage.ErrAlreadyExists
	}
	m.tokens[t.TokenHash] = *t
	return nil
}

func (m *memStore) ConsumeRefreshToken(_ context.Context, hash string, now time.Time) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tokens[hash]
	if !ok || !now.Before(t.ExpiresAt) {
		return uuid.Nil, storage.ErrNotFound
	}
	delete(m.tokens, hash)
	return t.UserID, nil
}

func (m *memStore) DeleteUserRefreshTokens(_ context.Context, userID uuid.UUID) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for h, t := range m.tokens {
		if t.UserID == userID {
			delete(m.tokens, h)
			n++
		}
	}
	return n, nil
}

func (m *memStore) DeleteExpiredTokens(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for h, t := range m.tokens {
		if !t.ExpiresAt.After(now) {
			delete(m.tokens, h)
			n++
		}
	}
	return n, nil
}

func (m *memStore) tokenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokens)
}

func (m *memStore) Close() {}
