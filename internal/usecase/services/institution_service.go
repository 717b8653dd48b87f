package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/logger"
)

type InstitutionService struct {
	institutionRepo domain.InstitutionRepository
}

func NewInstitutionService(institutionRepo domain.InstitutionRepository) *InstitutionService {
	return &InstitutionService{institutionRepo: institutionRepo}
}

func (s *InstitutionService) ListInstitutions(ctx context.Context) ([]domain.Institution, error) {
	institutions, err := s.institutionRepo.GetInstitutions(ctx)
	if err != nil {
		logger.Error("institution service list failed", err, nil)
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	return institutions, nil
}

func (s *InstitutionService) GetInstitution(ctx context.Context, id int64) (domain.Institution, error) {
	institution, err := s.institutionRepo.GetInstitution(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Institution{}, err
		}
		logger.Error("institution service get failed", err, logger.Fields{
			"institutionId": id,
		})
		return domain.Institution{}, fmt.Errorf("get institution %d: %w", id, err)
	}
	return institution, nil
}

func (s *InstitutionService) AddInstitution(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	logger.Info("institution service add request", logger.Fields{
		"name": institution.Name,
	})

	institution.Name = strings.TrimSpace(institution.Name)
	if institution.Name == "" {
		return domain.Institution{}, &commons.ValidationError{
			Field:   "name",
			Message: "The Name field is required",
		}
	}

	existing, err := s.institutionRepo.GetInstitutionByName(ctx, institution.Name)
	if err != nil && !errors.Is(err, commons.ErrRecordNotFound) {
		logger.Error("institution service duplicate check failed", err, logger.Fields{
			"name": institution.Name,
		})
		return domain.Institution{}, fmt.Errorf("check institution name %q: %w", institution.Name, err)
	}
	if err == nil && existing.InstitutionID != 0 {
		return domain.Institution{}, &commons.ValidationError{
			Field:   "institutionId",
			Message: "Institution already exists.",
		}
	}

	created, err := s.institutionRepo.AddInstitution(ctx, institution)
	if err != nil {
		logger.Error("institution service add failed", err, logger.Fields{
			"name": institution.Name,
		})
		return domain.Institution{}, fmt.Errorf("add institution %q: %w", institution.Name, err)
	}

	logger.Info("institution service add success", logger.Fields{
		"institutionId": created.InstitutionID,
		"name":          created.Name,
	})
	return created, nil
}
