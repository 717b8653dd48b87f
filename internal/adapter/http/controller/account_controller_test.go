package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/api-sage/banking-api/internal/adapter/http/controller"
	"github.com/api-sage/banking-api/internal/adapter/http/router"
	"github.com/api-sage/banking-api/internal/adapter/repository/memory"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newAccountMux(accounts ...domain.Account) (*http.ServeMux, *memory.AccountRepository) {
	repo := memory.NewAccountRepository(accounts...)
	mux := router.New(
		controller.NewAccountController(services.NewAccountService(repo)),
		nil,
		nil,
		nil,
	)
	return mux, repo
}

func seedAccount(id int64, balance string, institutionID int64) domain.Account {
	return domain.Account{
		AccountID:     id,
		Balance:       decimal.RequireFromString(balance),
		InstitutionID: institutionID,
		MemberID:      id,
	}
}

func doRequest(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func decodeFieldErrors(t *testing.T, rr *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var payload map[string][]string
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	return payload
}

func TestUpdateBalanceReturnsNoContent(t *testing.T) {
	mux, repo := newAccountMux(seedAccount(1, "10.25", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/1", "15.60")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}

	stored, err := repo.GetAccount(context.Background(), 1)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !stored.Balance.Equal(decimal.RequireFromString("15.60")) {
		t.Fatalf("expected balance 15.60, got %s", stored.Balance)
	}
}

func TestUpdateBalanceMissingAccountReturns404(t *testing.T) {
	mux, _ := newAccountMux()

	rr := doRequest(mux, http.MethodPut, "/api/account/1", "15.60")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestUpdateBalanceNegativeReturns400WithPayload(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.25", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/1", "-0.01")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	messages, ok := payload["balance"]
	if !ok || len(messages) != 1 {
		t.Fatalf("expected one balance message, got %v", payload)
	}
	if messages[0] != "Balance should be greater than or equal to zero" {
		t.Errorf("unexpected message %q", messages[0])
	}
}

func TestUpdateBalanceNonNumericIDReturns404(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.25", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/abc", "15.60")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestTransferReturnsNoContent(t *testing.T) {
	mux, repo := newAccountMux(seedAccount(1, "10.50", 1), seedAccount(2, "3.60", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/Transfer",
		`{"fromAccount":1,"toAccount":2,"amount":1.2}`)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
	}

	from, _ := repo.GetAccount(context.Background(), 1)
	if !from.Balance.Equal(decimal.RequireFromString("9.30")) {
		t.Fatalf("expected from balance 9.30, got %s", from.Balance)
	}
}

func TestTransferMissingAccountReturns404(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.50", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/Transfer",
		`{"fromAccount":1,"toAccount":2,"amount":1.2}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestTransferCrossInstitutionReturns422(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.50", 1), seedAccount(2, "3.60", 2))

	rr := doRequest(mux, http.MethodPut, "/api/account/Transfer",
		`{"fromAccount":1,"toAccount":2,"amount":1.2}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	if len(payload["institutionId"]) != 1 {
		t.Fatalf("expected one institutionId message, got %v", payload)
	}
}

func TestTransferInsufficientFundsReturns422(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.50", 1), seedAccount(2, "3.60", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/Transfer",
		`{"fromAccount":1,"toAccount":2,"amount":10.51}`)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	messages := payload["amount"]
	if len(messages) != 1 || messages[0] != "Insufficient funds to complete transaction" {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestTransferInvalidBodyReturns400(t *testing.T) {
	mux, _ := newAccountMux(seedAccount(1, "10.50", 1))

	rr := doRequest(mux, http.MethodPut, "/api/account/Transfer", `{not json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
