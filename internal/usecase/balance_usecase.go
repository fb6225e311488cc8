package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
)

// BalanceUseCase derives account balances from the statement store.
type BalanceUseCase struct {
	statements StatementRepository
	users      UserDirectory
	cache      Cache
	metrics    MetricsRecorder
}

// NewBalanceUseCase creates a new BalanceUseCase. cache and metrics
// may be nil.
func NewBalanceUseCase(statements StatementRepository, users UserDirectory, cache Cache, metrics MetricsRecorder) *BalanceUseCase {
	return &BalanceUseCase{
		statements: statements,
		users:      users,
		cache:      cache,
		metrics:    metrics,
	}
}

// GetBalance replays the account's full operation history into its
// current balance. With withStatement the history itself is returned
// alongside. Plain balance reads go through the cache; statement reads
// always hit the store.
func (uc *BalanceUseCase) GetBalance(ctx context.Context, accountID string, withStatement bool) (*domain.Balance, error) {
	ok, err := uc.users.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	if !withStatement && uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, balanceCacheKey(accountID)); err == nil {
			if amount, err := decimal.NewFromString(string(cached)); err == nil {
				if uc.metrics != nil {
					uc.metrics.BalanceQueried(true, 0)
				}

				return &domain.Balance{Amount: amount}, nil
			}
		}
	}

	history, err := uc.statements.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BalanceQueried(false, len(history))
	}

	balance := &domain.Balance{Amount: domain.ComputeBalance(accountID, history)}
	if withStatement {
		balance.Statement = history
	}

	if uc.cache != nil {
		// Best effort; a failed cache write never fails the read.
		uc.cache.Set(ctx, balanceCacheKey(accountID), []byte(balance.Amount.String()), BalanceCacheTTL)
	}

	return balance, nil
}
