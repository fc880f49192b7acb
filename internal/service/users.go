package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pribylovaa/credit-dispute/internal/models"
)

// Me returns the public view of the caller.
func (s *Service) Me(ctx context.Context, caller models.Identity) (*models.PublicUser, error) {
	const op = "service.users.Me"

	user, err := s.loadSessionUser(ctx, op, caller.UserID)
	if err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

// ListUsers returns public views of all users. Admin only.
func (s *Service) ListUsers(ctx context.Context, caller models.Identity) ([]models.PublicUser, error) {
	const op = "service.users.ListUsers"

	if !caller.IsAdmin() {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}

	return out, nil
}

// SeedUser creates or overwrites an account with the given role. Used by
// the seed command; it is the only way to obtain an admin.
func (s *Service) SeedUser(ctx context.Context, in RegisterInput, role models.Role) (*models.PublicUser, error) {
	const op = "service.users.SeedUser"

	if !role.Valid() {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidInput)
	}

	email, err := validateEmail(in.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.validatePassword(in.Password); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := hashPassword(in.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.storage.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pub := user.Public()
	return &pub, nil
}
