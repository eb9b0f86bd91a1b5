package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftflow/swiftflow/pkg/utils"
)

// Genders accepted at registration.
const (
	GenderMale           = "male"
	GenderFemale         = "female"
	GenderOther          = "other"
	GenderPreferNotToSay = "prefer-not-to-say"
)

// User is an account holder. Password always holds a bcrypt hash, never
// the plain text.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Age       int
	Gender    string
	Country   string
	LastLogin time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds a user with a freshly hashed password and a lowercased
// email. Field-level bounds are enforced at the API boundary; this only
// guards the invariants the entity cannot exist without.
func NewUser(name, email, password string, age int, gender, country string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrInvalidInput)
	}
	if !utils.IsEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(email),
		Password:  hash,
		Age:       age,
		Gender:    gender,
		Country:   strings.TrimSpace(country),
		LastLogin: now,
		IsActive:  true,
		CreatedAt: now,
	}, nil
}

// CheckPassword reports whether the plain password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, u.Password)
}
