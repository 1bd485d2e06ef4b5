package operation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/google/uuid"
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

func TestCreate_AppendsOperation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`INSERT INTO "operations"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), dto.OperationCreate{
		ID:          uuid.New(),
		AccountID:   1,
		Kind:        ledger.KindDebit,
		Amount:      1000,
		Description: "desc",
		OccurredAt:  time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecent_NewestFirstWithLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	now := time.Now()
	rows := sqlmock.NewRows(
		[]string{"id", "account_id", "kind", "amount", "description", "occurred_at"},
	).
		AddRow(uuid.New(), int64(1), "c", int64(500), "newest", now).
		AddRow(uuid.New(), int64(1), "d", int64(1000), "older", now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT (.+) FROM "operations" WHERE account_id = (.+) ORDER BY occurred_at DESC LIMIT (.+)`).
		WillReturnRows(rows)

	ops, err := repo.ListRecent(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, ledger.KindCredit, ops[0].Kind)
	assert.Equal(t, "newest", ops[0].Description)
	assert.Equal(t, ledger.KindDebit, ops[1].Kind)
	assert.Equal(t, int64(1000), ops[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecent_EmptyLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT (.+) FROM "operations"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "account_id", "kind", "amount", "description", "occurred_at"},
		))

	ops, err := repo.ListRecent(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, ops)
}
