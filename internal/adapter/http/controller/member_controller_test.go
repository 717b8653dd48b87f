package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/api-sage/banking-api/internal/adapter/http/controller"
	"github.com/api-sage/banking-api/internal/adapter/http/router"
	"github.com/api-sage/banking-api/internal/adapter/repository/memory"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/usecase/services"
)

func newMemberMux(institutions []domain.Institution, members []domain.Member) *http.ServeMux {
	memberRepo := memory.NewMemberRepository(members...)
	institutionRepo := memory.NewInstitutionRepository(institutions...)
	return router.New(
		nil,
		nil,
		controller.NewMemberController(services.NewMemberService(memberRepo, institutionRepo)),
		nil,
	)
}

func TestCreateMemberMissingInstitutionReturns404WithPayload(t *testing.T) {
	mux := newMemberMux(nil, nil)

	rr := doRequest(mux, http.MethodPost, "/api/member",
		`{"givenName":"Ada","surname":"Lovelace","institutionId":7}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	messages := payload["institutionId"]
	if len(messages) != 1 || messages[0] != "Institution not found." {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestCreateMemberReturns201(t *testing.T) {
	mux := newMemberMux([]domain.Institution{{InstitutionID: 1, Name: "First National"}}, nil)

	rr := doRequest(mux, http.MethodPost, "/api/member",
		`{"givenName":"Ada","surname":"Lovelace","institutionId":1}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if payload["memberId"] == nil || payload["memberId"] == float64(0) {
		t.Errorf("expected assigned memberId, got %v", payload)
	}
	if payload["accounts"] == nil {
		t.Error("expected accounts array in payload")
	}
}

func TestCreateMemberValidationReturns400(t *testing.T) {
	mux := newMemberMux([]domain.Institution{{InstitutionID: 1, Name: "First National"}}, nil)

	rr := doRequest(mux, http.MethodPost, "/api/member", `{"institutionId":1}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	if len(payload["givenName"]) != 1 || len(payload["surname"]) != 1 {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestUpdateMemberReturns204(t *testing.T) {
	mux := newMemberMux(
		[]domain.Institution{{InstitutionID: 1, Name: "First National"}},
		[]domain.Member{{MemberID: 1, GivenName: "Ada", Surname: "Lovelace", InstitutionID: 1}},
	)

	rr := doRequest(mux, http.MethodPut, "/api/member/1",
		`{"givenName":"Ada","surname":"Byron","institutionId":1}`)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUpdateMissingMemberReturns404WithPayload(t *testing.T) {
	mux := newMemberMux([]domain.Institution{{InstitutionID: 1, Name: "First National"}}, nil)

	rr := doRequest(mux, http.MethodPut, "/api/member/9",
		`{"givenName":"Ada","surname":"Byron","institutionId":1}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	payload := decodeFieldErrors(t, rr)
	if len(payload["memberId"]) != 1 {
		t.Fatalf("unexpected payload %v", payload)
	}
}

func TestDeleteMemberReturns204(t *testing.T) {
	mux := newMemberMux(
		[]domain.Institution{{InstitutionID: 1, Name: "First National"}},
		[]domain.Member{{MemberID: 1, GivenName: "Ada", Surname: "Lovelace", InstitutionID: 1}},
	)

	rr := doRequest(mux, http.MethodDelete, "/api/member/1", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}

	rr = doRequest(mux, http.MethodDelete, "/api/member/1", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rr.Code)
	}
}

func TestGetMembersEmbedsAccounts(t *testing.T) {
	member := domain.Member{
		MemberID:      1,
		GivenName:     "Ada",
		Surname:       "Lovelace",
		InstitutionID: 1,
		Accounts:      []domain.Account{seedAccount(1, "10.50", 1)},
	}
	mux := newMemberMux([]domain.Institution{{InstitutionID: 1, Name: "First National"}}, []domain.Member{member})

	rr := doRequest(mux, http.MethodGet, "/api/member/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var payload struct {
		Accounts []struct {
			AccountID int64           `json:"accountId"`
			Balance   json.RawMessage `json:"balance"`
		} `json:"accounts"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if len(payload.Accounts) != 1 || payload.Accounts[0].AccountID != 1 {
		t.Fatalf("unexpected accounts payload %v", payload.Accounts)
	}
}
