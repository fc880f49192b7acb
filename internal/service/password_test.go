package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	t.Parallel()

	for _, pw := range []string{"secret1", "пароль-123", strings.Repeat("x", 72), " spaced "} {
		h, err := hashPassword(pw, bcrypt.MinCost)
		require.NoError(t, err)
		require.True(t, checkPassword(h, pw))
		require.False(t, checkPassword(h, pw+"!"))
		require.False(t, checkPassword(h, ""))
	}
}

func TestCheckPassword_RejectsTailPastBcryptLimit(t *testing.T) {
	t.Parallel()

	pw := strings.Repeat("p", maxPasswordBytes)
	h, err := hashPassword(pw, bcrypt.MinCost)
	require.NoError(t, err)

	require.True(t, checkPassword(h, pw))
	require.False(t, checkPassword(h, pw+"-not-my-password"))
	require.False(t, checkPassword(h, pw+"p"))
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	t.Parallel()

	a, err := hashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := hashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.True(t, checkPassword(a, "secret1"))
	require.True(t, checkPassword(b, "secret1"))

	cost, err := bcrypt.Cost([]byte(a))
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost, cost)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	require.False(t, checkPassword("", "secret1"))
	require.False(t, checkPassword("not-a-bcrypt-hash", "secret1"))
	require.False(t, checkPassword("$2a$10$short", "secret1"))
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "a@x.com", want: "a@x.com"},
		{in: "  Jane.Doe@Example.com ", want: "Jane.Doe@Example.com"},
		{in: "", wantErr: true},
		{in: "   ", wantErr: true},
		{in: "no-at-sign", wantErr: true},
		{in: "Jane <jane@example.com>", wantErr: true},
	}

	for _, tc := range cases {
		got, err := validateEmail(tc.in)
		if tc.wantErr {
			require.ErrorIs(t, err, ErrInvalidEmail, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	svc, _ := newSvc(t)

	require.NoError(t, svc.validatePassword("secret1"))
	require.NoError(t, svc.validatePassword("абвгде"))
	require.ErrorIs(t, svc.validatePassword(""), ErrWeakPassword)
	require.ErrorIs(t, svc.validatePassword("12345"), ErrWeakPassword)
	require.ErrorIs(t, svc.validatePassword(strings.Repeat("x", 73)), ErrPasswordTooLong)
}
