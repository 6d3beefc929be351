package services

import (
	"errors"

	"finance-dashboard/internal/auth"
	"finance-dashboard/internal/logger"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/storage"
)

// AuthServiceImpl implements AuthService on the credential store.
type AuthServiceImpl struct {
	users storage.UserRepository
}

// NewAuthService creates the auth service.
func NewAuthService(users storage.UserRepository) AuthService {
	return &AuthServiceImpl{users: users}
}

// Register hashes the password and creates the account. A duplicate email
// is reported as ErrEmailTaken whether caught by the pre-check or by the
// unique constraint.
func (s *AuthServiceImpl) Register(req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.users.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(req.Email, hashed, req.FullName)
	if err != nil {
		if errors.Is(err, storage.ErrEmailExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	logger.LogEvent(logger.EventUserRegistered, "api-server", "sqlite", map[string]interface{}{
		"user_id": user.ID,
	})

	return user, nil
}

// Authenticate verifies email, password and the active flag. Bad
// credentials and inactive accounts all come back as (nil, nil) so callers
// cannot tell them apart.
func (s *AuthServiceImpl) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if !auth.CheckPasswordHash(password, user.HashedPassword) {
		return nil, nil
	}

	if !user.IsActive {
		return nil, nil
	}

	logger.LogEvent(logger.EventUserLogin, "api-server", "api", map[string]interface{}{
		"user_id": user.ID,
	})

	return user, nil
}

func (s *AuthServiceImpl) GetUserByEmail(email string) (*models.User, error) {
	return s.users.GetUserByEmail(email)
}
