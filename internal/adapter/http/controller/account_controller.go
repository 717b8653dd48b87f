package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/api-sage/banking-api/internal/adapter/http/models"
	"github.com/api-sage/banking-api/internal/commons"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	SetBalance(ctx context.Context, accountID int64, balance decimal.Decimal) error
	Transfer(ctx context.Context, fromAccountID int64, toAccountID int64, amount decimal.Decimal) error
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	// The literal segment takes precedence over the {id} pattern, so
	// /api/account/Transfer never reaches updateBalance.
	mux.Handle("PUT /api/account/Transfer", wrap(http.HandlerFunc(c.transfer), authMiddleware))
	mux.Handle("PUT /api/account/{id}", wrap(http.HandlerFunc(c.updateBalance), authMiddleware))
}

func (c *AccountController) updateBalance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		logResponse(r, http.StatusNotFound, start)
		return
	}

	var balance decimal.Decimal
	if err := json.NewDecoder(r.Body).Decode(&balance); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.NewFieldErrors("balance", "A decimal request body is required"))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, balance)

	if err := c.service.SetBalance(r.Context(), id, balance); err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, start)
}

func (c *AccountController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.NewFieldErrors("body", "Invalid request body"))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, req)

	if err := c.service.Transfer(r.Context(), req.FromAccount, req.ToAccount, req.Amount); err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, start)
}

func wrap(handler http.Handler, authMiddleware func(http.Handler) http.Handler) http.Handler {
	if authMiddleware != nil {
		return authMiddleware(handler)
	}
	return handler
}
