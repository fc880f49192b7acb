package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/storage"
	"github.com/stretchr/testify/require"
)

var regIn = RegisterInput{Email: "a@x.com", Password: "secret1", FirstName: "Ann", LastName: "Lee"}

func TestRegister_OK(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)

	var savedUser *models.User
	var savedToken *models.RefreshToken
	gomock.InOrder(
		st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound),
		st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *models.User) error {
			savedUser = u
			return nil
		}),
		st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, rt *models.RefreshToken) error {
			savedToken = rt
			return nil
		}),
	)

	in := regIn
	in.Email = "  a@x.com "
	sess, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	require.Equal(t, models.RoleUser, savedUser.Role)
	require.True(t, checkPassword(savedUser.PasswordHash, "secret1"))
	require.Equal(t, savedUser.ID, sess.User.ID)
	require.Equal(t, "a@x.com", sess.User.Email)
	require.Equal(t, "Ann", sess.User.FirstName)

	require.Equal(t, hashRefreshToken(sess.Tokens.RefreshToken), savedToken.TokenHash)
	require.Equal(t, savedUser.ID, savedToken.UserID)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), savedToken.ExpiresAt, 5*time.Second)

	id, err := svc.ValidateAccessToken(sess.Tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, savedUser.ID, id.UserID)
	require.Equal(t, models.RoleUser, id.Role)
}

// The public view never carries the hash, whatever the password.
func TestRegister_PublicViewHasNoHash(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"secret1", "another-password", "пароль-длинный"} {
		svc := New(newMemStore(), testCfg())
		in := regIn
		in.Password = pw

		sess, err := svc.Register(context.Background(), in)
		require.NoError(t, err)

		raw, err := json.Marshal(sess.User)
		require.NoError(t, err)
		require.NotContains(t, string(raw), "password")
		require.NotContains(t, string(raw), "$2a$")
	}
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	in := regIn
	in.Email = "not-an-email"
	_, err := svc.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidEmail)

	in = regIn
	in.Password = "12345"
	_, err = svc.Register(context.Background(), in)
	require.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegister_EmailTaken_OnLookup(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(&models.User{ID: uuid.New(), Email: "a@x.com"}, nil)

	_, err := svc.Register(context.Background(), regIn)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_EmailTaken_OnInsertRace(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

	_, err := svc.Register(context.Background(), regIn)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_LookupError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().UserByEmail(gomock.Any(), "a@x.com").Return(nil, errors.New("db down"))

	_, err := svc.Register(context.Background(), regIn)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_OK(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	u := testUser(models.RoleUser)
	u.PasswordHash = mustHashPW(t, "secret1")

	st.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)
	st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil)

	sess, err := svc.Login(context.Background(), u.Email, "secret1")
	require.NoError(t, err)
	require.Equal(t, u.ID, sess.User.ID)
	require.NotEmpty(t, sess.Tokens.AccessToken)
	require.NotEmpty(t, sess.Tokens.RefreshToken)
}

// No SaveRefreshToken expectation: any token write fails the test.
func TestLogin_WrongPassword_NoTokenIssued(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	u := testUser(models.RoleUser)
	u.PasswordHash = mustHashPW(t, "secret1")

	st.EXPECT().UserByEmail(gomock.Any(), u.Email).Return(u, nil)

	sess, err := svc.Login(context.Background(), u.Email, "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Nil(t, sess)
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().UserByEmail(gomock.Any(), "ghost@x.com").Return(nil, storage.ErrNotFound)

	_, err := svc.Login(context.Background(), "ghost@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.NotEmpty(t, svc.dummyHash, "dummy bcrypt comparison performed")
}

func TestLogin_EmptyInput(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	_, err := svc.Login(context.Background(), "", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "a@x.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_OK(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	u := testUser(models.RoleUser)

	gomock.InOrder(
		st.EXPECT().ConsumeRefreshToken(gomock.Any(), hashRefreshToken("old-token"), gomock.Any()).Return(u.ID, nil),
		st.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil),
		st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil),
	)

	sess, err := svc.Refresh(context.Background(), "old-token")
	require.NoError(t, err)
	require.NotEqual(t, "old-token", sess.Tokens.RefreshToken)
	require.Equal(t, u.ID, sess.User.ID)
}

// Unknown token: only the conditional delete runs, nothing is issued.
func TestRefresh_UnknownToken(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().ConsumeRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, storage.ErrNotFound)

	_, err := svc.Refresh(context.Background(), "plausible-but-unknown-token-value-0000000000")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_EmptyToken(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)
	_, err := svc.Refresh(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_UserVanished(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	id := uuid.New()
	st.EXPECT().ConsumeRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(id, nil)
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := svc.Refresh(context.Background(), "tok")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegenerateToken_RevokesThenIssues(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	u := testUser(models.RoleUser)

	gomock.InOrder(
		st.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil),
		st.EXPECT().DeleteUserRefreshTokens(gomock.Any(), u.ID).Return(int64(3), nil),
		st.EXPECT().SaveRefreshToken(gomock.Any(), gomock.Any()).Return(nil),
	)

	sess, err := svc.RegenerateToken(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, sess.User.ID)
}

func TestRegenerateToken_UserMissing(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	id := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := svc.RegenerateToken(context.Background(), id)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_DeletesAll(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	id := uuid.New()
	st.EXPECT().DeleteUserRefreshTokens(gomock.Any(), id).Return(int64(2), nil)

	require.NoError(t, svc.Logout(context.Background(), id))
}

func TestLogout_StorageError(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().DeleteUserRefreshTokens(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	require.Error(t, svc.Logout(context.Background(), uuid.New()))
}

func TestPurgeExpiredRefreshTokens(t *testing.T) {
	t.Parallel()

	svc, st := newSvc(t)
	st.EXPECT().DeleteExpiredTokens(gomock.Any(), gomock.Any()).Return(int64(4), nil)

	n, err := svc.PurgeExpiredRefreshTokens(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 4, n)
}
