// Package middleware holds request middleware shared across routes.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/swiftflow/swiftflow/config"
)

// JwtProtected verifies the bearer credential on protected routes. The
// verified token is left in c.Locals("user") for handlers.
func JwtProtected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// jwtError writes the failure envelope directly; importing webapi/common
// here would invert the layering.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": "Not authorized to access this route",
	})
}
