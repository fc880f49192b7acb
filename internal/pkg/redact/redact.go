// redact masks sensitive values before they reach the logs.
package redact

import "strings"

// Email keeps the first rune of the local part and the whole domain:
//
//	"john.doe@example.com" -> "j***@example.com"
//	"no-at"                -> "***"
func Email(s string) string {
	if strings.Count(s, "@") != 1 {
		return "***"
	}

	i := strings.IndexByte(s, '@')
	local, domain := []rune(s[:i]), s[i+1:]
	if len(local) == 0 {
		return "***@" + domain
	}

	return string(local[:1]) + "***@" + domain
}

// Token is the placeholder logged instead of any access or refresh token.
func Token() string { return "[REDACTED_TOKEN]" }

// Password is the placeholder logged instead of a password or its hash.
func Password() string { return "[REDACTED_PASSWORD]" }

// Presence reports whether a secret is configured without revealing it.
func Presence(secret string) string {
	if strings.TrimSpace(secret) == "" {
		return "unset"
	}

	return "set"
}
