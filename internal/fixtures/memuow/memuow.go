// Package memuow provides an in-memory UnitOfWork double for tests. It honors
// the same contract as the gorm-backed implementation: writes stage inside Do
// and apply only when fn returns nil, and locks taken by GetForUpdate or
// GetForShare are held until Do returns. Per-account locking uses a
// sync.RWMutex, so the serialization observable by the engine matches the
// row-lock protocol of the real store.
package memuow

import (
	"context"
	"sync"

	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/dto"
	"github.com/amirasaad/ledger/pkg/repository"
)

type accountState struct {
	mu   sync.RWMutex
	data dto.AccountRead
	ops  []dto.OperationRead // append order, oldest first
}

// Store is an in-memory account store plus operation log.
type Store struct {
	mu       sync.Mutex
	accounts map[int64]*accountState

	// FailOperationCreate, when set, makes every operation append fail,
	// simulating a storage fault after the balance write inside the same
	// unit of work.
	FailOperationCreate error
}

// New creates an empty Store.
func New() *Store {
	return &Store{accounts: make(map[int64]*accountState)}
}

// SeedAccount provisions an account out-of-band, as the real store would be
// seeded before the engine starts.
func (s *Store) SeedAccount(id, limit, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[id] = &accountState{
		data: dto.AccountRead{ID: id, Limit: limit, Balance: balance},
	}
}

func (s *Store) account(id int64) (*accountState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	return a, ok
}

// Dump returns the account state and full operation log, oldest first. Tests
// use it to assert that rejected operations left nothing behind.
func (s *Store) Dump(id int64) (dto.AccountRead, []dto.OperationRead, bool) {
	a, ok := s.account(id)
	if !ok {
		return dto.AccountRead{}, nil, false
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	ops := make([]dto.OperationRead, len(a.ops))
	copy(ops, a.ops)
	return a.data, ops, true
}

// Do runs fn against a staging transaction. Staged writes apply only if fn
// returns nil; all account locks release when Do returns.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	t := &memTx{store: s, balances: make(map[int64]int64)}
	defer t.unlockAll()

	if err := fn(t); err != nil {
		return err
	}
	t.commit()
	return nil
}

// AccountRepository implements repository.UnitOfWork outside a transaction.
func (s *Store) AccountRepository() (repository.AccountRepository, error) {
	return accountRepo{t: &memTx{store: s, balances: make(map[int64]int64), autocommit: true}}, nil
}

// OperationRepository implements repository.UnitOfWork outside a transaction.
func (s *Store) OperationRepository() (repository.OperationRepository, error) {
	return operationRepo{t: &memTx{store: s, balances: make(map[int64]int64), autocommit: true}}, nil
}

// memTx is one unit of work: it stages writes and tracks held locks.
type memTx struct {
	store      *Store
	autocommit bool

	balances map[int64]int64
	inserts  []dto.OperationCreate

	writeLocked map[int64]*accountState
	readLocked  []*accountState
}

var _ repository.UnitOfWork = (*memTx)(nil)

func (t *memTx) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(t)
}

func (t *memTx) AccountRepository() (repository.AccountRepository, error) {
	return accountRepo{t: t}, nil
}

func (t *memTx) OperationRepository() (repository.OperationRepository, error) {
	return operationRepo{t: t}, nil
}

func (t *memTx) commit() {
	for id, balance := range t.balances {
		a, ok := t.store.account(id)
		if !ok {
			continue
		}
		t.withWriteLock(id, a, func() {
			a.data.Balance = balance
		})
	}
	for _, ins := range t.inserts {
		a, ok := t.store.account(ins.AccountID)
		if !ok {
			continue
		}
		op := dto.OperationRead{
			Kind:        ins.Kind,
			Amount:      ins.Amount,
			Description: ins.Description,
			OccurredAt:  ins.OccurredAt,
		}
		t.withWriteLock(ins.AccountID, a, func() {
			a.ops = append(a.ops, op)
		})
	}
	t.balances = make(map[int64]int64)
	t.inserts = nil
}

// withWriteLock runs fn with the account write-locked, reusing a lock the
// transaction already holds.
func (t *memTx) withWriteLock(id int64, a *accountState, fn func()) {
	if _, held := t.writeLocked[id]; held {
		fn()
		return
	}
	a.mu.Lock()
	fn()
	a.mu.Unlock()
}

// holdsLock reports whether the transaction already holds any lock on a.
// Re-acquiring a read lock while a writer waits would deadlock.
func (t *memTx) holdsLock(id int64, a *accountState) bool {
	if _, held := t.writeLocked[id]; held {
		return true
	}
	for _, r := range t.readLocked {
		if r == a {
			return true
		}
	}
	return false
}

func (t *memTx) unlockAll() {
	for _, a := range t.writeLocked {
		a.mu.Unlock()
	}
	t.writeLocked = nil
	for _, a := range t.readLocked {
		a.mu.RUnlock()
	}
	t.readLocked = nil
}

type accountRepo struct {
	t *memTx
}

var _ repository.AccountRepository = accountRepo{}

func (r accountRepo) Get(ctx context.Context, id int64) (*dto.AccountRead, error) {
	a, ok := r.t.store.account(id)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	if !r.t.holdsLock(id, a) {
		a.mu.RLock()
		defer a.mu.RUnlock()
	}
	data := a.data
	return &data, nil
}

func (r accountRepo) GetForUpdate(ctx context.Context, id int64) (*dto.AccountRead, error) {
	a, ok := r.t.store.account(id)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	if r.t.writeLocked == nil {
		r.t.writeLocked = make(map[int64]*accountState)
	}
	if _, held := r.t.writeLocked[id]; !held {
		a.mu.Lock()
		r.t.writeLocked[id] = a
	}
	data := a.data
	return &data, nil
}

func (r accountRepo) GetForShare(ctx context.Context, id int64) (*dto.AccountRead, error) {
	a, ok := r.t.store.account(id)
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}
	if !r.t.holdsLock(id, a) {
		a.mu.RLock()
		r.t.readLocked = append(r.t.readLocked, a)
	}
	data := a.data
	return &data, nil
}

func (r accountRepo) Create(ctx context.Context, create dto.AccountCreate) error {
	r.t.store.mu.Lock()
	defer r.t.store.mu.Unlock()
	if _, ok := r.t.store.accounts[create.ID]; ok {
		return nil
	}
	r.t.store.accounts[create.ID] = &accountState{
		data: dto.AccountRead{ID: create.ID, Limit: create.Limit, Balance: create.Balance},
	}
	return nil
}

func (r accountRepo) UpdateBalance(ctx context.Context, id int64, balance int64) error {
	r.t.balances[id] = balance
	if r.t.autocommit {
		r.t.commit()
	}
	return nil
}

type operationRepo struct {
	t *memTx
}

var _ repository.OperationRepository = operationRepo{}

func (r operationRepo) Create(ctx context.Context, create dto.OperationCreate) error {
	if err := r.t.store.FailOperationCreate; err != nil {
		return err
	}
	r.t.inserts = append(r.t.inserts, create)
	if r.t.autocommit {
		r.t.commit()
	}
	return nil
}

func (r operationRepo) ListRecent(ctx context.Context, accountID int64, limit int) ([]dto.OperationRead, error) {
	a, ok := r.t.store.account(accountID)
	if !ok {
		return nil, nil
	}
	if !r.t.holdsLock(accountID, a) {
		a.mu.RLock()
		defer a.mu.RUnlock()
	}
	n := len(a.ops)
	if limit < n {
		n = limit
	}
	out := make([]dto.OperationRead, 0, n)
	for i := len(a.ops) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, a.ops[i])
	}
	return out, nil
}
