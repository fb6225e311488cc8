package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the type of a ledger operation. It is the single
// definition of the operation type set; every layer consumes this one.
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindWithdraw Kind = "withdraw"
	KindTransfer Kind = "transfer"
)

var validKinds = map[Kind]bool{
	KindDeposit:  true,
	KindWithdraw: true,
	KindTransfer: true,
}

// IsValid checks if the kind is a known operation kind.
func (k Kind) IsValid() bool {
	return validKinds[k]
}

// SelfFunded reports whether the operation kind moves money within a
// single account (deposit, withdraw) rather than between two.
func (k Kind) SelfFunded() bool {
	return k == KindDeposit || k == KindWithdraw
}

// Operation represents a single posted statement record. Records are
// immutable once appended; the statement store exposes no update path.
type Operation struct {
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ID             string
	OwnerID        string
	CounterpartyID string
	Description    string
	Kind           Kind
	Amount         decimal.Decimal
}

// Validate checks the structural invariants of an operation record.
func (o *Operation) Validate() error {
	if !o.Kind.IsValid() {
		return ErrInvalidKind
	}

	if o.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if o.Kind.SelfFunded() && o.CounterpartyID != o.OwnerID {
		return ErrCounterpartyMismatch
	}

	if o.Kind == KindTransfer && o.CounterpartyID == o.OwnerID {
		return ErrSameAccount
	}

	return nil
}

// PayerID returns the account funding the operation: the counterparty
// for transfers, the owner otherwise.
func (o *Operation) PayerID() string {
	if o.Kind == KindTransfer {
		return o.CounterpartyID
	}

	return o.OwnerID
}

// SignedAmount returns the contribution of this operation to the
// balance of accountID. Deposits credit the owner; a transfer credits
// its owner (the receiving side) and debits its counterparty; every
// other case is a debit. A transfer record appears once in the store
// but is matched by both parties' account queries, so the sign is
// resolved by comparing the owner against the queried account.
func (o *Operation) SignedAmount(accountID string) decimal.Decimal {
	switch {
	case o.Kind == KindDeposit:
		return o.Amount
	case o.Kind == KindTransfer && o.OwnerID == accountID:
		return o.Amount
	default:
		return o.Amount.Neg()
	}
}
