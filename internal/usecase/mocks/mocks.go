package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finvault/finvault/internal/domain"
	"github.com/finvault/finvault/internal/usecase"
)

// MockTransaction is an in-memory transaction. Writes registered via
// OnCommit apply only when Commit is called; OnFinish hooks (lock
// releases) run on both Commit and Rollback.
type MockTransaction struct {
	mu          sync.Mutex
	done        bool
	commitHooks []func()
	finishHooks []func()
}

func (t *MockTransaction) OnCommit(hook func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.commitHooks = append(t.commitHooks, hook)
}

func (t *MockTransaction) OnFinish(hook func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finishHooks = append(t.finishHooks, hook)
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	for _, hook := range t.commitHooks {
		hook()
	}
	for _, hook := range t.finishHooks {
		hook()
	}
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return nil
	}
	t.done = true
	for _, hook := range t.finishHooks {
		hook()
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockStatementRepository is an in-memory, append-only statement store.
// Appends inside a MockTransaction become visible on commit, and
// LockAccount holds a per-account mutex until the transaction finishes,
// so the store reproduces the serialization the Postgres repository
// provides.
type MockStatementRepository struct {
	mu    sync.Mutex
	ops   []*domain.Operation
	locks map[string]*sync.Mutex

	AppendFunc          func(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error
	FindByAccountFunc   func(ctx context.Context, accountID string) ([]*domain.Operation, error)
	FindByAccountTxFunc func(ctx context.Context, tx usecase.Transaction, accountID string) ([]*domain.Operation, error)
	FindOneFunc         func(ctx context.Context, id, accountID string) (*domain.Operation, error)
	LockAccountFunc     func(ctx context.Context, tx usecase.Transaction, accountID string) error
}

func NewMockStatementRepository() *MockStatementRepository {
	return &MockStatementRepository{
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *MockStatementRepository) Append(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, op)
	}

	store := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.ops = append(m.ops, op)
	}

	if mtx, ok := tx.(*MockTransaction); ok && mtx != nil {
		mtx.OnCommit(store)
		return nil
	}

	store()
	return nil
}

func (m *MockStatementRepository) FindByAccount(ctx context.Context, accountID string) ([]*domain.Operation, error) {
	if m.FindByAccountFunc != nil {
		return m.FindByAccountFunc(ctx, accountID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Operation, 0)
	for _, op := range m.ops {
		if op.OwnerID == accountID || op.CounterpartyID == accountID {
			result = append(result, op)
		}
	}
	return result, nil
}

func (m *MockStatementRepository) FindByAccountTx(ctx context.Context, tx usecase.Transaction, accountID string) ([]*domain.Operation, error) {
	if m.FindByAccountTxFunc != nil {
		return m.FindByAccountTxFunc(ctx, tx, accountID)
	}
	return m.FindByAccount(ctx, accountID)
}

func (m *MockStatementRepository) FindOne(ctx context.Context, id, accountID string) (*domain.Operation, error) {
	if m.FindOneFunc != nil {
		return m.FindOneFunc(ctx, id, accountID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, op := range m.ops {
		if op.ID == id && (op.OwnerID == accountID || op.CounterpartyID == accountID) {
			return op, nil
		}
	}
	return nil, domain.ErrOperationNotFound
}

func (m *MockStatementRepository) LockAccount(ctx context.Context, tx usecase.Transaction, accountID string) error {
	if m.LockAccountFunc != nil {
		return m.LockAccountFunc(ctx, tx, accountID)
	}

	m.mu.Lock()
	lock, ok := m.locks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[accountID] = lock
	}
	m.mu.Unlock()

	lock.Lock()

	if mtx, ok := tx.(*MockTransaction); ok && mtx != nil {
		mtx.OnFinish(lock.Unlock)
		return nil
	}

	lock.Unlock()
	return nil
}

// All returns a snapshot of every stored operation.
func (m *MockStatementRepository) All() []*domain.Operation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Operation(nil), m.ops...)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	ExistsFunc     func(ctx context.Context, id string) (bool, error)
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[id]
	return ok, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockRetrier is a mock implementation of Retrier. The default runs
// the operation exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is a mock implementation of Cache. TTLs are ignored.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{
		items: make(map[string][]byte),
	}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if value, ok := m.items[key]; ok {
		return value, nil
	}
	return nil, fmt.Errorf("cache miss: %s", key)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
