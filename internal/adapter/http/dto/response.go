package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
)

// UserResponse represents a directory entry in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// OperationResponse represents a statement record in API responses.
type OperationResponse struct {
	ID             string          `json:"id"`
	OwnerID        string          `json:"owner_id"`
	CounterpartyID string          `json:"counterparty_id"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	Kind           domain.Kind     `json:"kind"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OperationFromDomain converts a domain operation to a response.
func OperationFromDomain(op *domain.Operation) *OperationResponse {
	return &OperationResponse{
		ID:             op.ID,
		OwnerID:        op.OwnerID,
		CounterpartyID: op.CounterpartyID,
		Amount:         op.Amount,
		Description:    op.Description,
		Kind:           op.Kind,
		CreatedAt:      op.CreatedAt,
		UpdatedAt:      op.UpdatedAt,
	}
}

// OperationsFromDomain converts domain operations to responses.
func OperationsFromDomain(ops []*domain.Operation) []*OperationResponse {
	result := make([]*OperationResponse, len(ops))
	for i, op := range ops {
		result[i] = OperationFromDomain(op)
	}
	return result
}

// BalanceResponse represents a derived balance in API responses.
// Statement is present only when the full history was requested.
type BalanceResponse struct {
	Balance   decimal.Decimal      `json:"balance"`
	Statement []*OperationResponse `json:"statement,omitempty"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.Balance) *BalanceResponse {
	resp := &BalanceResponse{Balance: b.Amount}
	if b.Statement != nil {
		resp.Statement = OperationsFromDomain(b.Statement)
	}
	return resp
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
