// Package webapi exposes the transaction engine over HTTP. Route parsing,
// JSON encoding and status-code mapping live here; all business decisions
// stay in the engine.
package webapi

import (
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/webapi/common"
	ledgerapi "github.com/amirasaad/ledger/webapi/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp builds the Fiber application with all routes and middleware.
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	fiberApp.Use(recover.New())

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	ledgerapi.Routes(fiberApp, a.LedgerService)

	return fiberApp
}
