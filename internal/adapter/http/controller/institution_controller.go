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

type InstitutionService interface {
	ListInstitutions(ctx context.Context) ([]domain.Institution, error)
	GetInstitution(ctx context.Context, id int64) (domain.Institution, error)
	AddInstitution(ctx context.Context, institution domain.Institution) (domain.Institution, error)
}

type InstitutionController struct {
	service InstitutionService
}

func NewInstitutionController(service InstitutionService) *InstitutionController {
	return &InstitutionController{service: service}
}

func (c *InstitutionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("GET /api/institution", http.HandlerFunc(c.list))
	mux.Handle("GET /api/institution/{id}", http.HandlerFunc(c.getByID))
	mux.Handle("POST /api/institution", wrap(http.HandlerFunc(c.create), authMiddleware))
}

func (c *InstitutionController) list(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	institutions, err := c.service.ListInstitutions(r.Context())
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	writeJSON(w, http.StatusOK, models.InstitutionsFromDomain(institutions))
	logResponse(r, http.StatusOK, start)
}

func (c *InstitutionController) getByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		logResponse(r, http.StatusNotFound, start)
		return
	}

	institution, err := c.service.GetInstitution(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	writeJSON(w, http.StatusOK, models.InstitutionFromDomain(institution))
	logResponse(r, http.StatusOK, start)
}

func (c *InstitutionController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var dto models.InstitutionDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.NewFieldErrors("body", "Invalid request body"))
		logResponse(r, http.StatusBadRequest, start)
		return
	}
	logRequest(r, dto)

	created, err := c.service.AddInstitution(r.Context(), dto.ToDomain())
	if err != nil {
		writeServiceError(w, r, err, start)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/institution/%d", created.InstitutionID))
	writeJSON(w, http.StatusCreated, models.InstitutionFromDomain(created))
	logResponse(r, http.StatusCreated, start)
}
