// Package auth exposes registration and session endpoints.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/middleware"
	authsvc "github.com/swiftflow/swiftflow/pkg/service/auth"
	usersvc "github.com/swiftflow/swiftflow/pkg/service/user"
	"github.com/swiftflow/swiftflow/webapi/common"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.AppConfig) {
	group := app.Group("/api/auth")
	group.Post("/register", Register(userSvc, authSvc))
	group.Post("/login", Login(authSvc))
	group.Get("/me", middleware.JwtProtected(cfg.Jwt), Me(userSvc, authSvc))
	group.Post("/logout", middleware.JwtProtected(cfg.Jwt), Logout())
}

// Register creates an account and issues a token in one step.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.Response
// @Router /api/auth/register [post]
func Register(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.Register(c.Context(), usersvc.RegisterParams{
			Name:     input.Name,
			Email:    input.Email,
			Password: input.Password,
			Age:      input.Age,
			Gender:   input.Gender,
			Country:  input.Country,
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessMessageJSON(c, fiber.StatusCreated, "User registered successfully", fiber.Map{
			"user":  toUserResponse(u),
			"token": token,
		})
	}
}

// Login authenticates a user and returns a fresh token.
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessMessageJSON(c, fiber.StatusOK, "Login successful", fiber.Map{
			"user":  toUserResponse(u),
			"token": token,
		})
	}
}

// Me resolves the requesting identity from the verified token.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/auth/me [get]
// @Security Bearer
func Me(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.FailJSON(c, fiber.StatusUnauthorized, "Not authorized to access this route")
		}
		id, err := authSvc.CurrentUserID(token)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		u, err := userSvc.Get(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, toUserResponse(u))
	}
}

// Logout acknowledges the request; the credential lives on the client and
// is simply discarded there. No server-side session state exists.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/auth/logout [post]
// @Security Bearer
func Logout() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessMessageJSON(c, fiber.StatusOK, "Logged out successfully", nil)
	}
}
