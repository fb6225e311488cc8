package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finvault/finvault/internal/domain"
	"github.com/finvault/finvault/internal/usecase"
)

// CreateUserRequest represents a request to register a directory entry.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateUserRequest) ToUseCaseInput() usecase.CreateUserInput {
	return usecase.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

// CreateOperationRequest represents a deposit or withdraw request.
// Amounts decode from JSON numbers or strings into exact decimals.
type CreateOperationRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input for the given account/kind.
func (r *CreateOperationRequest) ToUseCaseInput(accountID string, kind domain.Kind) usecase.CreateOperationInput {
	return usecase.CreateOperationInput{
		OwnerID:     accountID,
		Amount:      r.Amount,
		Description: r.Description,
		Kind:        kind,
	}
}

// CreateTransferRequest represents a transfer request. The paying
// account comes from the URL; the body names the recipient.
type CreateTransferRequest struct {
	RecipientID string          `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ToUseCaseInput converts to use case input. The recipient owns the
// resulting record; the payer is its counterparty.
func (r *CreateTransferRequest) ToUseCaseInput(payerID string) usecase.CreateOperationInput {
	return usecase.CreateOperationInput{
		OwnerID:        r.RecipientID,
		CounterpartyID: payerID,
		Amount:         r.Amount,
		Description:    r.Description,
		Kind:           domain.KindTransfer,
	}
}
