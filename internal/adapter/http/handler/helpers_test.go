package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/finvault/finvault/internal/adapter/http/dto"
	"github.com/finvault/finvault/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"operation not found", domain.ErrOperationNotFound, http.StatusNotFound},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid kind", domain.ErrInvalidKind, http.StatusBadRequest},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest},
		{"counterparty mismatch", domain.ErrCounterpartyMismatch, http.StatusBadRequest},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"operation failed", domain.ErrOperationFailed, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if decoded["status"] != "ok" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad input", "details here")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "bad input" || resp.Message != "details here" {
		t.Fatalf("unexpected error response: %+v", resp)
	}
}

func TestParseBoolQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/balance?statement=true", nil)
	if !parseBoolQuery(req, "statement") {
		t.Fatal("expected true for statement=true")
	}

	req = httptest.NewRequest(http.MethodGet, "/balance?statement=1", nil)
	if !parseBoolQuery(req, "statement") {
		t.Fatal("expected true for statement=1")
	}

	req = httptest.NewRequest(http.MethodGet, "/balance?statement=false", nil)
	if parseBoolQuery(req, "statement") {
		t.Fatal("expected false for statement=false")
	}

	req = httptest.NewRequest(http.MethodGet, "/balance", nil)
	if parseBoolQuery(req, "statement") {
		t.Fatal("expected false when missing")
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return setChiURLParams(r, map[string]string{key: value})
}

func setChiURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := &chi.Context{}
	for k, v := range params {
		rctx.URLParams.Keys = append(rctx.URLParams.Keys, k)
		rctx.URLParams.Values = append(rctx.URLParams.Values, v)
	}

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
