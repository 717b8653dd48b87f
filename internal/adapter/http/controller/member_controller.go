package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/api-sage/banking-api/internal/adapter/http/models"
	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

type MemberService interface {
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, id int64) (domain.Member, error)
	AddMember(ctx context.Context, member domain.Member) (domain.Member, error)
	UpdateMember(ctx context.Context, member domain.Member) error
	DeleteMember(ctx context.Context, id int64) error
}

type MemberController struct {
	service MemberService
}

func NewMemberController(service MemberService) *MemberController {
	return &MemberController{service: service}
}

func (c *MemberController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("GET /api/member", http.HandlerFunc(c.list))
	mux.Handle("GET /api/member/{id}", http.HandlerFunc(c.getByID))
	mux.Handle("POST /api/member", wrap(http.HandlerFunc(c.create), authMiddleware))
	mux.Handle("PUT /api/member/{id}", wrap(http.HandlerFunc(c.update), authMiddleware))
	mux.Handle("DELETE /api/member/{id}", wrap(http.HandlerFunc(c.delete), authMiddleware))
}

func (c *MemberController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	members, err := c.service.ListMembers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	writeJSON(w, http.StatusOK, models.MembersFromDomain(members))
	logResponse(r, http.StatusOK, start)
}

func (c *MemberController) getByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		logResponse(r, http.StatusNotFound, start)
		return
	}

	member, err := c.service.GetMember(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	writeJSON(w, http.StatusOK, models.MemberFromDomain(member))
	logResponse(r, http.StatusOK, start)
}

func (c *MemberController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	dto, ok := c.decodeMember(w, r, start)
	if !ok {
		return
	}

	created, err := c.service.AddMember(r.Context(), dto.ToDomain())
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/member/%d", created.MemberID))
	writeJSON(w, http.StatusCreated, models.MemberFromDomain(created))
	logResponse(r, http.StatusCreated, start)
}

func (c *MemberController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		logResponse(r, http.StatusNotFound, start)
		return
	}

	dto, ok := c.decodeMember(w, r, start)
	if !ok {
		return
	}

	member := dto.ToDomain()
	member.MemberID = id

	if err := c.service.UpdateMember(r.Context(), member); err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, start)
}

func (c *MemberController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		logResponse(r, http.StatusNotFound, start)
		return
	}

	if err := c.service.DeleteMember(r.Context(), id); err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, start)
}

func (c *MemberController) decodeMember(w http.ResponseWriter, r *http.Request, start time.Time) (models.MemberDto, bool) {
	var dto models.MemberDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.NewFieldErrors("body", "Invalid request body"))
		logResponse(r, http.StatusBadRequest, start)
		return models.MemberDto{}, false
	}
	logRequest(r, dto)

	if errs := dto.Validate(); errs != nil {
		writeJSON(w, http.StatusBadRequest, errs)
		logResponse(r, http.StatusBadRequest, start)
		return models.MemberDto{}, false
	}

	return dto, true
}
