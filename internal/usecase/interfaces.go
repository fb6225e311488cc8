package usecase

import (
	"context"
	"time"

	"github.com/finvault/finvault/internal/domain"
)

// StatementRepository defines data access for the append-only
// statement store. There is no update or delete: posted operations are
// immutable.
type StatementRepository interface {
	// Append persists a fully populated operation. tx may be nil for
	// callers that do not need transactional scope.
	Append(ctx context.Context, tx Transaction, op *domain.Operation) error
	// FindByAccount returns every operation the account is a party to,
	// as owner or counterparty, ordered by creation time.
	FindByAccount(ctx context.Context, accountID string) ([]*domain.Operation, error)
	// FindByAccountTx is FindByAccount executed inside tx, so the read
	// participates in the transaction's isolation.
	FindByAccountTx(ctx context.Context, tx Transaction, accountID string) ([]*domain.Operation, error)
	// FindOne fetches a single operation scoped to a party account.
	FindOne(ctx context.Context, id, accountID string) (*domain.Operation, error)
	// LockAccount serializes writers on accountID for the duration of tx.
	LockAccount(ctx context.Context, tx Transaction, accountID string) error
}

// UserDirectory answers existence queries for account ids. The ledger
// core treats it as an external collaborator.
type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// UserRepository defines data access for directory management.
type UserRepository interface {
	UserDirectory
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-executes an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MetricsRecorder receives counters from the use cases. Implementations
// must be safe for concurrent use.
type MetricsRecorder interface {
	OperationCreated(kind string, amount float64, duration time.Duration)
	OperationRejected(reason string)
	BalanceQueried(cacheHit bool, foldLength int)
	UserCreated()
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
