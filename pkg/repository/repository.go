// Package repository declares persistence interfaces consumed by services.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftflow/swiftflow/pkg/domain"
)

// UserRepository persists account holders.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// TouchLastLogin stamps a successful login.
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
