package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	customerrors "github.com/duacyd/analitica/customErrors"
	"github.com/duacyd/analitica/models"
	"github.com/duacyd/analitica/repository"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
}

type AuthServiceImpl struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &AuthServiceImpl{repo: repo}
}

// Login resolves the username and verifies the password. Unknown user
// and hash mismatch return the same error so responses cannot be used
// to enumerate usernames.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, customerrors.ErrMissingCredentials
	}

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, customerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, customerrors.ErrInvalidCredentials
	}

	return user, nil
}
