package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/banking-api/internal/adapter/repository/memory"
	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/usecase/services"
)

func TestAddInstitutionAssignsID(t *testing.T) {
	svc := services.NewInstitutionService(memory.NewInstitutionRepository())

	created, err := svc.AddInstitution(context.Background(), domain.Institution{Name: "First National"})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if created.InstitutionID == 0 {
		t.Fatal("expected assigned institution id")
	}
}

func TestAddInstitutionRejectsDuplicateName(t *testing.T) {
	repo := memory.NewInstitutionRepository(domain.Institution{InstitutionID: 1, Name: "First National"})
	svc := services.NewInstitutionService(repo)

	_, err := svc.AddInstitution(context.Background(), domain.Institution{Name: "First National"})

	var validationErr *commons.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validationErr.Field != "institutionId" || validationErr.Message != "Institution already exists." {
		t.Errorf("unexpected error %q: %q", validationErr.Field, validationErr.Message)
	}
}

func TestAddInstitutionRequiresName(t *testing.T) {
	svc := services.NewInstitutionService(memory.NewInstitutionRepository())

	_, err := svc.AddInstitution(context.Background(), domain.Institution{Name: "   "})

	var validationErr *commons.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "name" {
		t.Fatalf("expected name validation error, got %v", err)
	}
}

func TestGetInstitutionNotFound(t *testing.T) {
	svc := services.NewInstitutionService(memory.NewInstitutionRepository())

	_, err := svc.GetInstitution(context.Background(), 42)
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
