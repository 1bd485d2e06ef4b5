// Package infra provides the Postgres-backed infrastructure of the ledger:
// connection pool, storage models, repositories and the unit of work.
package infra

import (
	"errors"

	"github.com/amirasaad/ledger/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a gorm Postgres connection pool configured from cnf.
// SQL logging is enabled only in development.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf.Url == "" {
		return nil, errors.New("DB_CONN_STR is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(postgres.Open(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}
