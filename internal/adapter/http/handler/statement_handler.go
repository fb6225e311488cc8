package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/finvault/internal/adapter/http/dto"
	"github.com/finvault/finvault/internal/domain"
	"github.com/finvault/finvault/internal/usecase"
)

// StatementService defines the behavior needed by StatementHandler.
type StatementService interface {
	CreateOperation(ctx context.Context, input usecase.CreateOperationInput) (*domain.Operation, error)
	GetOperation(ctx context.Context, id, accountID string) (*domain.Operation, error)
}

// StatementHandler handles statement-related HTTP requests.
type StatementHandler struct {
	statementUC StatementService
}

// NewStatementHandler creates a new StatementHandler.
func NewStatementHandler(statementUC StatementService) *StatementHandler {
	return &StatementHandler{statementUC: statementUC}
}

// Deposit posts a deposit to the account in the URL.
func (h *StatementHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.createSelfFunded(w, r, domain.KindDeposit)
}

// Withdraw posts a withdrawal against the account in the URL.
func (h *StatementHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.createSelfFunded(w, r, domain.KindWithdraw)
}

func (h *StatementHandler) createSelfFunded(w http.ResponseWriter, r *http.Request, kind domain.Kind) {
	accountID := chi.URLParam(r, "id")
	if accountID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.CreateOperationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	op, err := h.statementUC.CreateOperation(r.Context(), req.ToUseCaseInput(accountID, kind))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create operation", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.OperationFromDomain(op))
}

// Transfer moves money from the account in the URL to the recipient in
// the body.
func (h *StatementHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	payerID := chi.URLParam(r, "id")
	if payerID == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.RecipientID == "" {
		writeError(w, http.StatusBadRequest, "missing recipient ID", "")
		return
	}

	op, err := h.statementUC.CreateOperation(r.Context(), req.ToUseCaseInput(payerID))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.OperationFromDomain(op))
}

// GetOperation retrieves one posted operation, scoped to the account in
// the URL.
func (h *StatementHandler) GetOperation(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")
	operationID := chi.URLParam(r, "operationID")
	if accountID == "" || operationID == "" {
		writeError(w, http.StatusBadRequest, "missing account or operation ID", "")
		return
	}

	op, err := h.statementUC.GetOperation(r.Context(), operationID, accountID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get operation", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OperationFromDomain(op))
}
