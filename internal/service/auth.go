package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"taskhub/internal/auth"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/session"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	users     *repository.UserRepository
	sessions  *session.Store
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(users *repository.UserRepository, sessions *session.Store, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Register creates a new user.
func (s *AuthService) Register(ctx context.Context, email, password, name, position string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Position:     position,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Int("user_id", u.ID))
	return u, nil
}

// Login checks credentials and opens a session; the returned token is the
// session cookie value.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, jti, err := auth.GenerateToken(u.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}

	if err := s.sessions.Create(ctx, jti, u.ID); err != nil {
		return nil, "", err
	}

	s.logger.Info("User logged in", zap.Int("user_id", u.ID))
	return u, token, nil
}

// Logout revokes the session behind the given jti.
func (s *AuthService) Logout(ctx context.Context, jti string) error {
	return s.sessions.Revoke(ctx, jti)
}
