// Package app wires configuration and infrastructure into the services the
// transport layer consumes.
package app

import (
	"log/slog"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/repository"
	ledgersvc "github.com/amirasaad/ledger/pkg/service/ledger"
)

// Deps contains the externally constructed dependencies of the application.
type Deps struct {
	Uow    repository.UnitOfWork
	Logger *slog.Logger
}

// App holds the configured services.
type App struct {
	Deps          *Deps
	Config        *config.App
	LedgerService *ledgersvc.Service
}

// New builds the application from its dependencies and configuration.
func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		LedgerService: ledgersvc.New(
			deps.Uow,
			deps.Logger,
			ledgersvc.WithStatementSize(cfg.StatementSize),
		),
	}
}
