// Package user covers account registration and lookup.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/repository"
)

type Service struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func New(users repository.UserRepository, logger *slog.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// RegisterParams carries validated registration input. Field bounds are
// enforced at the API boundary.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Age      int
	Gender   string
	Country  string
}

func (s *Service) Register(ctx context.Context, p RegisterParams) (*domain.User, error) {
	u, err := domain.NewUser(p.Name, p.Email, p.Password, p.Age, p.Gender, p.Country)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Info("registration failed", "email", u.Email, "error", err)
		return nil, err
	}
	s.logger.Info("user registered", "userID", u.ID)
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
