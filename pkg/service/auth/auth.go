// Package auth issues and verifies JWT credentials.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/repository"
)

type Service struct {
	users  repository.UserRepository
	cfg    config.Jwt
	logger *slog.Logger
}

func New(users repository.UserRepository, cfg config.Jwt, logger *slog.Logger) *Service {
	return &Service{users: users, cfg: cfg, logger: logger}
}

// Login verifies email/password and stamps last login. All failure paths
// return the same error so callers cannot probe for registered emails.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	log := s.logger.With("context", "Login")
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Info("login failed", "reason", "lookup", "error", err)
		return nil, domain.ErrUserUnauthorized
	}
	if !u.IsActive || !u.CheckPassword(password) {
		log.Info("login failed", "reason", "credentials", "userID", u.ID)
		return nil, domain.ErrUserUnauthorized
	}
	if err := s.users.TouchLastLogin(ctx, u.ID); err != nil {
		log.Warn("failed to stamp last login", "userID", u.ID, "error", err)
	}
	log.Info("login successful", "userID", u.ID)
	return u, nil
}

// GenerateToken signs an HS256 token carrying the user identity.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	tokenString, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		s.logger.Error("GenerateToken failed", "userID", u.ID, "error", err)
		return "", err
	}
	return tokenString, nil
}

// CurrentUserID extracts the user id from a verified token.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: malformed claims", domain.ErrUserUnauthorized)
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing user_id claim", domain.ErrUserUnauthorized)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid user_id claim", domain.ErrUserUnauthorized)
	}
	return id, nil
}
