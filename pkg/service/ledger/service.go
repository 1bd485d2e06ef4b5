// Package ledger provides the transaction engine: it validates and applies
// credit/debit operations against an account under a per-account serialization
// protocol, and answers statement queries with a consistent snapshot.
//
// The engine is the only component that mutates the account store or appends
// to the operation log. Balance update and log append happen inside one unit
// of work: both commit or neither does.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/google/uuid"
)

// DefaultStatementSize is the number of recent operations a statement returns
// when no size is configured.
const DefaultStatementSize = 10

// Service is the transaction engine.
type Service struct {
	uow           repository.UnitOfWork
	logger        *slog.Logger
	statementSize int
	now           func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithStatementSize overrides the number of operations returned by Statement.
func WithStatementSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.statementSize = n
		}
	}
}

// WithClock overrides the engine clock. Tests use it for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a transaction engine over the given unit of work.
func New(uow repository.UnitOfWork, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		uow:           uow,
		logger:        logger,
		statementSize: DefaultStatementSize,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Apply validates a single credit/debit operation and commits it atomically,
// or rejects it leaving stored state untouched.
//
// The read-validate-write span runs under the account's row lock, so no two
// Apply calls for the same account interleave; operations on different
// accounts proceed independently. On success the returned snapshot holds the
// new balance and the account limit.
//
// Errors: ledger.ErrInvalidKind, ledger.ErrInvalidAmount and
// ledger.ErrInvalidDescription for malformed input (checked before touching
// shared state); ledger.ErrAccountNotFound for an unknown account;
// ledger.ErrLimitExceeded when a debit would cross the credit floor; anything
// else wraps ledger.ErrStorage and the operation is not applied.
func (s *Service) Apply(
	ctx context.Context,
	accountID int64,
	kind ledger.Kind,
	amount int64,
	description string,
) (snapshot dto.BalanceSnapshot, err error) {
	logger := s.logger.With(
		"accountID", accountID,
		"kind", kind,
		"amount", amount,
	)

	if !kind.Valid() {
		return snapshot, ledger.ErrInvalidKind
	}
	if err = ledger.ValidateAmount(amount); err != nil {
		return snapshot, err
	}
	if err = ledger.ValidateDescription(description); err != nil {
		return snapshot, err
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		operationRepo, err := uow.OperationRepository()
		if err != nil {
			return err
		}

		// Row lock held until the unit of work commits or rolls back.
		account, err := accountRepo.GetForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		candidate := account.Balance + kind.Delta(amount)
		if kind == ledger.KindDebit && candidate < account.Floor() {
			return ledger.ErrLimitExceeded
		}

		if err = accountRepo.UpdateBalance(ctx, accountID, candidate); err != nil {
			return err
		}
		if err = operationRepo.Create(ctx, dto.OperationCreate{
			ID:          uuid.New(),
			AccountID:   accountID,
			Kind:        kind,
			Amount:      amount,
			Description: description,
			OccurredAt:  s.now(),
		}); err != nil {
			return err
		}

		snapshot = dto.BalanceSnapshot{Balance: candidate, Limit: account.Limit}
		return nil
	})
	if err != nil {
		err = classify(err)
		logger.Debug("apply rejected", "error", err)
		return dto.BalanceSnapshot{}, err
	}

	logger.Debug("apply committed", "balance", snapshot.Balance)
	return snapshot, nil
}

// Statement returns the current balance and limit together with the most
// recent operations, newest first. Both reads happen inside one unit of work
// under the account's shared lock, so the balance reflects exactly the
// returned leading operations and everything before them.
//
// Errors: ledger.ErrAccountNotFound for an unknown account; anything else
// wraps ledger.ErrStorage.
func (s *Service) Statement(ctx context.Context, accountID int64) (*dto.StatementRead, error) {
	var statement *dto.StatementRead

	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accountRepo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		operationRepo, err := uow.OperationRepository()
		if err != nil {
			return err
		}

		account, err := accountRepo.GetForShare(ctx, accountID)
		if err != nil {
			return err
		}
		operations, err := operationRepo.ListRecent(ctx, accountID, s.statementSize)
		if err != nil {
			return err
		}

		statement = &dto.StatementRead{
			Balance:    account.Balance,
			Limit:      account.Limit,
			QueriedAt:  s.now(),
			Operations: operations,
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return statement, nil
}

// classify passes domain rejections through unchanged and marks everything
// else as a storage fault.
func classify(err error) error {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound),
		errors.Is(err, ledger.ErrLimitExceeded),
		errors.Is(err, ledger.ErrInvalidKind),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidDescription):
		return err
	default:
		return fmt.Errorf("%w: %v", ledger.ErrStorage, err)
	}
}
