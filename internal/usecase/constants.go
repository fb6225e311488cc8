package usecase

import "time"

const (
	// BalanceCacheTTL bounds staleness of cached balances. Appends
	// invalidate the affected keys, so this is a safety net.
	BalanceCacheTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
