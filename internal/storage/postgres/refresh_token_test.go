package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"github.com/stretchr/testify/require"
)

// hashRefresh mirrors the service: sha256 then base64url.
func hashRefresh(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func saveToken(t *testing.T, st *Storage, userID uuid.UUID, plain string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	hash := hashRefresh(plain)
	require.NoError(t, st.SaveRefreshToken(context.Background(), &models.RefreshToken{
		TokenHash: hash,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}))
	return hash
}

func TestIntegration_ConsumeRefreshToken_OnlyOnce(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com", models.RoleUser)
	hash := saveToken(t, st, u.ID, "plain-1", time.Hour)

	got, err := st.ConsumeRefreshToken(context.Background(), hash, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, u.ID, got)

	_, err = st.ConsumeRefreshToken(context.Background(), hash, time.Now().UTC())
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_ConsumeRefreshToken_ExpiredKeepsRow(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com", models.RoleUser)
	hash := saveToken(t, st, u.ID, "plain-expired", time.Minute)

	_, err := st.ConsumeRefreshToken(context.Background(), hash, time.Now().UTC().Add(2*time.Minute))
	require.ErrorIs(t, err, storage.ErrNotFound)

	// still there for the janitor.
	n, err := st.DeleteExpiredTokens(context.Background(), time.Now().UTC().Add(2*time.Minute))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestIntegration_ConsumeRefreshToken_Concurrent(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com", models.RoleUser)
	hash := saveToken(t, st, u.ID, "plain-race", time.Hour)

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := st.ConsumeRefreshToken(context.Background(), hash, time.Now().UTC()); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, success)
}

func TestIntegration_SaveRefreshToken_UniqueViolation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com", models.RoleUser)
	saveToken(t, st, u.ID, "dup", time.Hour)

	err := st.SaveRefreshToken(context.Background(), &models.RefreshToken{
		TokenHash: hashRefresh("dup"),
		UserID:    u.ID,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
		CreatedAt: time.Now().UTC(),
	})
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

func TestIntegration_DeleteUserRefreshTokens(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	a := seedUser(t, st, "a@example.com", models.RoleUser)
	b := seedUser(t, st, "b@example.com", models.RoleUser)
	saveToken(t, st, a.ID, "a1", time.Hour)
	saveToken(t, st, a.ID, "a2", time.Hour)
	other := saveToken(t, st, b.ID, "b1", time.Hour)

	n, err := st.DeleteUserRefreshTokens(context.Background(), a.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	got, err := st.ConsumeRefreshToken(context.Background(), other, time.Now().UTC())
	require.NoError(t, err)
	require.Equal(t, b.ID, got)
}

func TestIntegration_DeleteExpiredTokens_KeepsLive(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := seedUser(t, st, "user@example.com", models.RoleUser)
	now := time.Now().UTC()
	require.NoError(t, st.SaveRefreshToken(context.Background(), &models.RefreshToken{
		TokenHash: hashRefresh("old"),
		UserID:    u.ID,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-time.Hour),
	}))
	live := saveToken(t, st, u.ID, "live", time.Hour)

	n, err := st.DeleteExpiredTokens(context.Background(), now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = st.ConsumeRefreshToken(context.Background(), live, now)
	require.NoError(t, err)
}
