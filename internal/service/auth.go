package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"toolcrib-backend/internal/domain"
	"toolcrib-backend/internal/repository"
	"toolcrib-backend/internal/security"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response does not leak which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	users   repository.UserRepository
	tokens  security.TokenManager
	timeout time.Duration
}

func NewAuthService(users repository.UserRepository, tokens security.TokenManager, timeout time.Duration) AuthService {
	return &authService{users: users, tokens: tokens, timeout: timeout}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, storeErr("Login", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
