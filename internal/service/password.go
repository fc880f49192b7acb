package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes; longer inputs are rejected.
const maxPasswordBytes = 72

// hashPassword hashes with bcrypt. The salt and cost are embedded in the output.
func hashPassword(password string, cost int) (string, error) {
	const op = "service.password.hashPassword"

	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword compares in constant time. A malformed hash is a mismatch.
// Candidates past maxPasswordBytes never match: bcrypt would compare only
// their first 72 bytes.
func checkPassword(hash, password string) bool {
	if len(password) > maxPasswordBytes {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// burnPasswordCheck spends one bcrypt comparison so that a login for an
// unknown email costs the same as a wrong password.
func (s *Service) burnPasswordCheck(password string) {
	s.dummyOnce.Do(func() {
		h, err := hashPassword("credit-dispute-dummy-password", s.cfg.BcryptCost)
		if err == nil {
			s.dummyHash = h
		}
	})

	if s.dummyHash != "" {
		_ = checkPassword(s.dummyHash, password)
	}
}

// validateEmail trims surrounding spaces and checks the address form.
// Case is preserved: emails match exactly as stored.
func validateEmail(raw string) (string, error) {
	const op = "service.password.validateEmail"

	email := strings.TrimSpace(raw)
	if email == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	return email, nil
}

// validatePassword enforces the configured minimum length in characters.
func (s *Service) validatePassword(pw string) error {
	const op = "service.password.validatePassword"

	minLen := s.cfg.PasswordMinLength
	if minLen < 1 {
		minLen = 1
	}

	if utf8.RuneCountInString(pw) < minLen {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	if len(pw) > maxPasswordBytes {
		return fmt.Errorf("%s: %w", op, ErrPasswordTooLong)
	}

	return nil
}
