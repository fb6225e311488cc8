package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
)

func TestOperationFromDomain(t *testing.T) {
	now := time.Now().UTC()
	op := &domain.Operation{
		ID:             "op-1",
		OwnerID:        "acc-2",
		CounterpartyID: "acc-1",
		Amount:         decimal.NewFromInt(75),
		Description:    "rent",
		Kind:           domain.KindTransfer,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	got := OperationFromDomain(op)

	if got.ID != "op-1" || got.OwnerID != "acc-2" || got.CounterpartyID != "acc-1" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Kind != domain.KindTransfer {
		t.Fatalf("expected transfer kind, got %s", got.Kind)
	}
	if !got.Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected amount 75, got %s", got.Amount)
	}
}

func TestBalanceFromDomain_OmitsEmptyStatement(t *testing.T) {
	balance := &domain.Balance{Amount: decimal.RequireFromString("10.25")}

	resp := BalanceFromDomain(balance)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if _, ok := decoded["statement"]; ok {
		t.Fatal("expected statement to be omitted for plain balance")
	}
}

func TestBalanceFromDomain_IncludesStatement(t *testing.T) {
	balance := &domain.Balance{
		Amount: decimal.NewFromInt(100),
		Statement: []*domain.Operation{
			{ID: "op-1", Kind: domain.KindDeposit, Amount: decimal.NewFromInt(100)},
		},
	}

	resp := BalanceFromDomain(balance)

	if len(resp.Statement) != 1 {
		t.Fatalf("expected 1 statement record, got %d", len(resp.Statement))
	}
	if resp.Statement[0].ID != "op-1" {
		t.Fatalf("expected op-1, got %s", resp.Statement[0].ID)
	}
}
