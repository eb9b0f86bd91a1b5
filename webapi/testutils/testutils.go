// Package testutils provides in-memory fakes and request helpers for
// handler tests.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/domain"
	"github.com/swiftflow/swiftflow/pkg/provider"
	authsvc "github.com/swiftflow/swiftflow/pkg/service/auth"
	conversionsvc "github.com/swiftflow/swiftflow/pkg/service/conversion"
	usersvc "github.com/swiftflow/swiftflow/pkg/service/user"
	"github.com/swiftflow/swiftflow/webapi"
)

// MemoryUserRepo is an in-memory repository.UserRepository.
type MemoryUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyRegistered
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *MemoryUserRepo) TouchLastLogin(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastLogin = time.Now()
	}
	return nil
}

// StubRatesProvider serves a canned table and counts upstream calls.
type StubRatesProvider struct {
	mu    sync.Mutex
	Table *provider.RateTable
	Err   error
	calls int
}

func (p *StubRatesProvider) FetchRates(_ context.Context, base string) (*provider.RateTable, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Table, nil
}

func (p *StubRatesProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// TestConfig returns a config suitable for handler tests.
func TestConfig() *config.AppConfig {
	return &config.AppConfig{
		Env:       "test",
		Jwt:       config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimit{MaxRequests: 1000, Window: time.Minute},
	}
}

// NewTestApp wires the app with in-memory fakes and returns it together
// with a registered user and a valid bearer token.
func NewTestApp(t *testing.T, rates *StubRatesProvider) (*fiber.App, *domain.User, string) {
	t.Helper()
	cfg := TestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo := NewMemoryUserRepo()
	userSvc := usersvc.New(repo, logger)
	authSvc := authsvc.New(repo, cfg.Jwt, logger)
	convSvc := conversionsvc.New(rates, logger)

	u, err := userSvc.Register(context.Background(), usersvc.RegisterParams{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Age:      30,
		Gender:   domain.GenderOther,
		Country:  "Testland",
	})
	if err != nil {
		t.Fatalf("failed to seed test user: %v", err)
	}
	token, err := authSvc.GenerateToken(u)
	if err != nil {
		t.Fatalf("failed to generate test token: %v", err)
	}

	return webapi.New(cfg, userSvc, authSvc, convSvc), u, token
}

// MakeRequest runs a request against the app with optional body and token.
func MakeRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
