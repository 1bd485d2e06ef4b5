package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint: errcheck

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestUoW_DoCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		accountRepo, err := txUow.AccountRepository()
		require.NoError(t, err)
		assert.NotNil(t, accountRepo)

		operationRepo, err := txUow.OperationRepository()
		require.NoError(t, err)
		assert.NotNil(t, operationRepo)
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("boom")
	err := uow.Do(context.Background(), func(txUow repository.UnitOfWork) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_RepositoriesOutsideTransaction(t *testing.T) {
	db, _ := newMockDB(t)
	uow := NewUoW(db)

	accountRepo, err := uow.AccountRepository()
	require.NoError(t, err)
	assert.NotNil(t, accountRepo)

	operationRepo, err := uow.OperationRepository()
	require.NoError(t, err)
	assert.NotNil(t, operationRepo)
}
