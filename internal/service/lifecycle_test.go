package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// End-to-end session scenarios against the in-memory store.

func TestScenario_RegisterThenRotate(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	reg, err := svc.Register(ctx, regIn)
	require.NoError(t, err)

	rot, err := svc.Refresh(ctx, reg.Tokens.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, reg.User.ID, rot.User.ID)

	_, err = svc.Refresh(ctx, reg.Tokens.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken, "rotated token is single use")

	_, err = svc.Refresh(ctx, rot.Tokens.RefreshToken)
	require.NoError(t, err, "new token is valid")
}

func TestScenario_DuplicateRegistration_KeepsFirstSession(t *testing.T) {
	t.Parallel()

	svc := New(newMemStore(), testCfg())
	ctx := context.Background()

	first, err := svc.Register(ctx, regIn)
	require.NoError(t, err)

	_, err = svc.Register(ctx, regIn)
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.ValidateAccessToken(first.Tokens.AccessToken)
	require.NoError(t, err)
	_, err = svc.Refresh(ctx, first.Tokens.RefreshToken)
	require.NoError(t, err)
}

func TestScenario_LogoutRevokesEveryDevice(t *testing.T) {
	t.Parallel()

	svc := New(newMemStore(), testCfg())
	ctx := context.Background()

	reg, err := svc.Register(ctx, regIn)
	require.NoError(t, err)
	laptop, err := svc.Login(ctx, regIn.Email, regIn.Password)
	require.NoError(t, err)
	phone, err := svc.Login(ctx, regIn.Email, regIn.Password)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, reg.User.ID))

	for _, tok := range []string{reg.Tokens.RefreshToken, laptop.Tokens.RefreshToken, phone.Tokens.RefreshToken} {
		_, err := svc.Refresh(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestScenario_RegenerateLeavesOnlyNewToken(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	reg, err := svc.Register(ctx, regIn)
	require.NoError(t, err)
	other, err := svc.Login(ctx, regIn.Email, regIn.Password)
	require.NoError(t, err)

	fresh, err := svc.RegenerateToken(ctx, reg.User.ID)
	require.NoError(t, err)
	require.Equal(t, 1, st.tokenCount())

	for _, tok := range []string{reg.Tokens.RefreshToken, other.Tokens.RefreshToken} {
		_, err := svc.Refresh(ctx, tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}

	_, err = svc.Refresh(ctx, fresh.Tokens.RefreshToken)
	require.NoError(t, err)
}

func TestScenario_WrongPassword_NoRowCreated(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	_, err := svc.Register(ctx, regIn)
	require.NoError(t, err)
	before := st.tokenCount()

	_, err = svc.Login(ctx, regIn.Email, "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, before, st.tokenCount())
}

func TestScenario_LongPasswordPrefix_NoLogin(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	in := regIn
	in.Email = "long@x.com"
	in.Password = strings.Repeat("p", maxPasswordBytes)
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)
	before := st.tokenCount()

	_, err = svc.Login(ctx, in.Email, in.Password+"-not-my-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Equal(t, before, st.tokenCount())

	_, err = svc.Login(ctx, in.Email, in.Password)
	require.NoError(t, err)
}

func TestScenario_UnknownRefresh_NoRowDeleted(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	_, err := svc.Register(ctx, regIn)
	require.NoError(t, err)
	before := st.tokenCount()

	_, err = svc.Refresh(ctx, "Zm9vYmFyYmF6cXV4cXV1eHF1dXhxdXV4cXV1eHF1dXg")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Equal(t, before, st.tokenCount())
}

func TestScenario_ExpiredRefresh_Rejected(t *testing.T) {
	t.Parallel()

	st := newMemStore()
	svc := New(st, testCfg())
	ctx := context.Background()

	reg, err := svc.Register(ctx, regIn)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().UTC().Add(8 * 24 * time.Hour) }

	_, err = svc.Refresh(ctx, reg.Tokens.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Equal(t, 1, st.tokenCount(), "expired token left for the janitor")

	n, err := svc.PurgeExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestScenario_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	svc := New(newMemStore(), testCfg())
	ctx := context.Background()

	_, err := svc.Register(ctx, regIn)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "A@X.COM", regIn.Password)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
