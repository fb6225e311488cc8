package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
)

// StatementUseCase validates and commits new ledger operations.
type StatementUseCase struct {
	txManager  TransactionManager
	statements StatementRepository
	users      UserDirectory
	idGen      IDGenerator
	retrier    Retrier
	cache      Cache
	metrics    MetricsRecorder
}

// NewStatementUseCase creates a new StatementUseCase. retrier, cache
// and metrics may be nil; conflicts then surface immediately, balance
// reads are never cached, and nothing is recorded.
func NewStatementUseCase(
	txManager TransactionManager,
	statements StatementRepository,
	users UserDirectory,
	idGen IDGenerator,
	retrier Retrier,
	cache Cache,
	metrics MetricsRecorder,
) *StatementUseCase {
	return &StatementUseCase{
		txManager:  txManager,
		statements: statements,
		users:      users,
		idGen:      idGen,
		retrier:    retrier,
		cache:      cache,
		metrics:    metrics,
	}
}

// CreateOperationInput represents input for posting an operation.
// For deposit and withdraw CounterpartyID is ignored and set to the
// owner; for transfer it is the paying account.
type CreateOperationInput struct {
	OwnerID        string
	CounterpartyID string
	Description    string
	Kind           domain.Kind
	Amount         decimal.Decimal
}

// CreateOperation runs the full creation protocol: existence checks,
// payer balance sufficiency, and a single atomic append. The balance
// read and the append commit together; nothing is written on any
// failure path.
func (uc *StatementUseCase) CreateOperation(ctx context.Context, input CreateOperationInput) (*domain.Operation, error) {
	start := time.Now()

	if !input.Kind.IsValid() {
		return nil, uc.reject(domain.ErrInvalidKind)
	}

	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, uc.reject(domain.ErrInvalidAmount)
	}

	if input.Kind.SelfFunded() {
		input.CounterpartyID = input.OwnerID
	} else if input.CounterpartyID == input.OwnerID {
		return nil, uc.reject(domain.ErrSameAccount)
	}

	if err := uc.checkParties(ctx, input); err != nil {
		return nil, uc.reject(err)
	}

	now := time.Now().UTC()
	op := &domain.Operation{
		ID:             uc.idGen.Generate(),
		OwnerID:        input.OwnerID,
		CounterpartyID: input.CounterpartyID,
		Amount:         input.Amount,
		Description:    input.Description,
		Kind:           input.Kind,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := op.Validate(); err != nil {
		return nil, uc.reject(err)
	}

	commit := func() error {
		return uc.commitOperation(ctx, op)
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, commit)
	} else {
		err = commit()
	}

	if err != nil {
		if isDomainError(err) {
			return nil, uc.reject(err)
		}

		return nil, uc.reject(fmt.Errorf("%w: %v", domain.ErrOperationFailed, err))
	}

	uc.invalidateBalances(ctx, op)

	if uc.metrics != nil {
		amount, _ := op.Amount.Float64()
		uc.metrics.OperationCreated(string(op.Kind), amount, time.Since(start))
	}

	return op, nil
}

// reject records the rejection reason and passes the error through.
func (uc *StatementUseCase) reject(err error) error {
	if uc.metrics != nil {
		uc.metrics.OperationRejected(rejectionReason(err))
	}

	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrCounterpartyMismatch):
		return "counterparty_mismatch"
	case errors.Is(err, domain.ErrOperationFailed):
		return "operation_failed"
	default:
		return "internal"
	}
}

// commitOperation performs the serialized read-then-write sequence.
// The payer's advisory lock is held for the whole transaction, so two
// concurrent debits cannot both observe a sufficient balance.
func (uc *StatementUseCase) commitOperation(ctx context.Context, op *domain.Operation) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Deposits are unconditional credits: no lock, no balance check.
	if op.Kind != domain.KindDeposit {
		payerID := op.PayerID()

		if err := uc.statements.LockAccount(ctx, tx, payerID); err != nil {
			return err
		}

		history, err := uc.statements.FindByAccountTx(ctx, tx, payerID)
		if err != nil {
			return err
		}

		balance := domain.ComputeBalance(payerID, history)
		if balance.LessThan(op.Amount) {
			return domain.ErrInsufficientFunds
		}
	}

	if err := uc.statements.Append(ctx, tx, op); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (uc *StatementUseCase) checkParties(ctx context.Context, input CreateOperationInput) error {
	ok, err := uc.users.Exists(ctx, input.OwnerID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAccountNotFound
	}

	if input.Kind == domain.KindTransfer {
		ok, err = uc.users.Exists(ctx, input.CounterpartyID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAccountNotFound
		}
	}

	return nil
}

func (uc *StatementUseCase) invalidateBalances(ctx context.Context, op *domain.Operation) {
	if uc.cache == nil {
		return
	}

	uc.cache.Delete(ctx, balanceCacheKey(op.OwnerID))
	if op.CounterpartyID != op.OwnerID {
		uc.cache.Delete(ctx, balanceCacheKey(op.CounterpartyID))
	}
}

// GetOperation fetches a single posted operation, scoped to a party
// account. An account that is not a party gets a not-found.
func (uc *StatementUseCase) GetOperation(ctx context.Context, id, accountID string) (*domain.Operation, error) {
	ok, err := uc.users.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	return uc.statements.FindOne(ctx, id, accountID)
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domain.ErrAccountNotFound,
		domain.ErrInsufficientFunds,
		domain.ErrInvalidAmount,
		domain.ErrInvalidKind,
		domain.ErrSameAccount,
		domain.ErrCounterpartyMismatch,
		domain.ErrOperationNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func balanceCacheKey(accountID string) string {
	return "balance:" + accountID
}
