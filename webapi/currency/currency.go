// Package currency exposes the conversion, rates, historical and catalog
// endpoints. All routes require a bearer credential.
package currency

import (
	"github.com/gofiber/fiber/v2"
	"github.com/swiftflow/swiftflow/config"
	"github.com/swiftflow/swiftflow/pkg/currency"
	"github.com/swiftflow/swiftflow/pkg/middleware"
	conversionsvc "github.com/swiftflow/swiftflow/pkg/service/conversion"
	"github.com/swiftflow/swiftflow/webapi/common"
)

// Routes registers the currency endpoints behind JWT protection.
func Routes(app *fiber.App, convSvc *conversionsvc.Service, cfg *config.AppConfig) {
	group := app.Group("/api/currency", middleware.JwtProtected(cfg.Jwt))

	group.Get("/rates/:base", GetRates(convSvc))
	group.Post("/convert", Convert(convSvc))
	group.Get("/historical/:from/:to", GetHistorical(convSvc))
	group.Get("/supported", GetSupported())
}

// GetRates returns the full rate table for a base currency.
// @Summary Get exchange rates
// @Tags currency
// @Produce json
// @Param base path string true "Base currency code"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/currency/rates/{base} [get]
// @Security Bearer
func GetRates(convSvc *conversionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rates, err := convSvc.GetRates(c.Context(), c.Params("base"))
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, rates)
	}
}

// Convert converts an amount between two currencies.
// @Summary Convert currency
// @Tags currency
// @Accept json
// @Produce json
// @Param request body ConvertRequest true "Conversion request"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/currency/convert [post]
// @Security Bearer
func Convert(convSvc *conversionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConvertRequest](c)
		if input == nil {
			return err // error response already written
		}
		result, err := convSvc.Convert(c.Context(), input.Amount, input.From, input.To)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, result)
	}
}

// GetHistorical returns a synthetic daily rate series for a pair.
// @Summary Get historical rates
// @Tags currency
// @Produce json
// @Param from path string true "Base currency code"
// @Param to path string true "Quote currency code"
// @Param days query int false "Days of history (1-365, default 30)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/currency/historical/{from}/{to} [get]
// @Security Bearer
func GetHistorical(convSvc *conversionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)
		series, err := convSvc.Historical(c.Params("from"), c.Params("to"), days)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessJSON(c, fiber.StatusOK, series)
	}
}

// GetSupported returns the fixed currency catalog. The count rides beside
// the data, matching the shape the converter UI consumes.
// @Summary List supported currencies
// @Tags currency
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.Response
// @Router /api/currency/supported [get]
// @Security Bearer
func GetSupported() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    currency.Supported(),
			"count":   currency.Count(),
		})
	}
}
