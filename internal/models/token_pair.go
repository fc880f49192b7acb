package models

import "time"

// TokenPair — tokens issued by register/login/refresh/regenerate.
//
//   - AccessToken — short-lived JWT;
//   - RefreshToken — opaque random secret, single use;
//   - AccessExpiresAt — access token expiry (UTC).
type TokenPair struct {
	AccessToken     string
	RefreshToken    string
	AccessExpiresAt time.Time
}

// Session — result of every successful lifecycle operation.
type Session struct {
	Tokens TokenPair
	User   PublicUser
}
