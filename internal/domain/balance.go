package domain

import "github.com/shopspring/decimal"

// Balance is the derived state of an account. Statement is populated
// only when the caller asked for the full history.
type Balance struct {
	Amount    decimal.Decimal
	Statement []*Operation
}

// ComputeBalance folds an account's operation history into its current
// balance. The fold starts at zero and adds each record's signed
// contribution; it is a pure function of the records and is
// order-insensitive. Accumulation is exact decimal arithmetic.
func ComputeBalance(accountID string, ops []*Operation) decimal.Decimal {
	total := decimal.Zero
	for _, op := range ops {
		total = total.Add(op.SignedAmount(accountID))
	}

	return total
}
