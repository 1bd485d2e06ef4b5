// Package ledger provides the HTTP handlers for the ledger endpoints.
package ledger

import (
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
	"github.com/amirasaad/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// Routes registers the ledger endpoints:
//   - POST /clientes/:id/transacoes : apply a credit or debit operation.
//   - GET  /clientes/:id/extrato    : current balance plus recent operations.
func Routes(app *fiber.App, svc *ledgersvc.Service) {
	app.Post("/clientes/:id/transacoes", CreateOperation(svc))
	app.Get("/clientes/:id/extrato", GetStatement(svc))
}

// CreateOperation returns the handler applying one operation against an
// account. Unknown accounts map to 404; malformed input and limit rejections
// to 422; storage faults to 500.
func CreateOperation(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := c.ParamsInt("id")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Unknown account", "account id must be an integer")
		}

		input, err := common.BindAndValidate[CreateOperationRequest](c)
		if input == nil {
			return err // error response already written
		}

		kind, err := ledger.ParseKind(input.Kind)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Invalid operation kind", err.Error())
		}

		snap, err := svc.Apply(c.UserContext(), int64(accountID), kind, input.Value, input.Description)
		if err != nil {
			log.Debugf("apply rejected for account %d: %v", accountID, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Operation rejected", err.Error())
		}

		return c.Status(fiber.StatusOK).JSON(CreateOperationResponse{
			Limit:   snap.Limit,
			Balance: snap.Balance,
		})
	}
}

// GetStatement returns the handler for the statement query.
func GetStatement(svc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, err := c.ParamsInt("id")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusNotFound, "Unknown account", "account id must be an integer")
		}

		st, err := svc.Statement(c.UserContext(), int64(accountID))
		if err != nil {
			log.Debugf("statement failed for account %d: %v", accountID, err)
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Statement unavailable", err.Error())
		}

		return c.Status(fiber.StatusOK).JSON(newStatementResponse(st))
	}
}
