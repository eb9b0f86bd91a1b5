// Package webapi assembles the Fiber application.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swiftflow/swiftflow/config"
	authsvc "github.com/swiftflow/swiftflow/pkg/service/auth"
	conversionsvc "github.com/swiftflow/swiftflow/pkg/service/conversion"
	usersvc "github.com/swiftflow/swiftflow/pkg/service/user"
	"github.com/swiftflow/swiftflow/webapi/auth"
	"github.com/swiftflow/swiftflow/webapi/common"
	"github.com/swiftflow/swiftflow/webapi/currency"
)

// New builds the app with all middleware and routes registered.
func New(
	cfg *config.AppConfig,
	userSvc *usersvc.Service,
	authSvc *authsvc.Service,
	convSvc *conversionsvc.Service,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.FailJSON(c, status, "Something went wrong")
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.FailJSON(c, fiber.StatusTooManyRequests, "Too many requests, please try again later")
		},
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return common.SuccessJSON(c, fiber.StatusOK, fiber.Map{"status": "ok"})
	})

	auth.Routes(app, userSvc, authSvc, cfg)
	currency.Routes(app, convSvc, cfg)

	return app
}
