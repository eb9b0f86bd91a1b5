package auth

import (
	"time"

	"github.com/swiftflow/swiftflow/pkg/domain"
)

// RegisterRequest mirrors the registration form.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Age      int    `json:"age" validate:"required,min=13,max=120"`
	Gender   string `json:"gender" validate:"required,oneof=male female other prefer-not-to-say"`
	Country  string `json:"country" validate:"required,min=2,max=100"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public view of a user; it never carries the
// password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Country   string    `json:"country"`
	LastLogin time.Time `json:"lastLogin"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		Gender:    u.Gender,
		Country:   u.Country,
		LastLogin: u.LastLogin,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
