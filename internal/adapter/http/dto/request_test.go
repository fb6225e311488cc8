package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
)

func TestCreateUserRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateUserRequest{Name: "Alice", Email: "alice@example.com"}

	got := req.ToUseCaseInput()
	if got.Name != "Alice" || got.Email != "alice@example.com" {
		t.Fatalf("ToUseCaseInput() = %+v", got)
	}
}

func TestCreateOperationRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateOperationRequest{
		Amount:      decimal.RequireFromString("12.34"),
		Description: "groceries",
	}

	got := req.ToUseCaseInput("acc-1", domain.KindWithdraw)

	if got.OwnerID != "acc-1" || got.Kind != domain.KindWithdraw {
		t.Fatalf("expected account and kind to be set, got %+v", got)
	}
	if !got.Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("expected amount 12.34, got %s", got.Amount)
	}
	if got.CounterpartyID != "" {
		t.Fatalf("expected counterparty to be left for the use case, got %s", got.CounterpartyID)
	}
}

func TestCreateTransferRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateTransferRequest{
		RecipientID: "acc-2",
		Amount:      decimal.NewFromInt(50),
		Description: "rent",
	}

	got := req.ToUseCaseInput("acc-1")

	if got.OwnerID != "acc-2" {
		t.Fatalf("expected recipient to own the record, got %s", got.OwnerID)
	}
	if got.CounterpartyID != "acc-1" {
		t.Fatalf("expected payer as counterparty, got %s", got.CounterpartyID)
	}
	if got.Kind != domain.KindTransfer {
		t.Fatalf("expected transfer kind, got %s", got.Kind)
	}
}

func TestCreateOperationRequest_DecodesStringAndNumberAmounts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want decimal.Decimal
	}{
		{"string amount", `{"amount":"10.50"}`, decimal.RequireFromString("10.50")},
		{"number amount", `{"amount":10.50}`, decimal.RequireFromString("10.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateOperationRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if !req.Amount.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, req.Amount)
			}
		})
	}
}
