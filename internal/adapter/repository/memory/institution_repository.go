package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

type InstitutionRepository struct {
	mu           sync.Mutex
	nextID       int64
	institutions map[int64]domain.Institution
}

func NewInstitutionRepository(institutions ...domain.Institution) *InstitutionRepository {
	repo := &InstitutionRepository{
		nextID:       1,
		institutions: make(map[int64]domain.Institution, len(institutions)),
	}
	for _, institution := range institutions {
		repo.institutions[institution.InstitutionID] = institution
		if institution.InstitutionID >= repo.nextID {
			repo.nextID = institution.InstitutionID + 1
		}
	}
	return repo
}

func (r *InstitutionRepository) GetInstitutions(_ context.Context) ([]domain.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Institution, 0, len(r.institutions))
	for _, institution := range r.institutions {
		out = append(out, institution)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstitutionID < out[j].InstitutionID })
	return out, nil
}

func (r *InstitutionRepository) GetInstitution(_ context.Context, id int64) (domain.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	institution, ok := r.institutions[id]
	if !ok {
		return domain.Institution{}, commons.ErrRecordNotFound
	}
	return institution, nil
}

func (r *InstitutionRepository) GetInstitutionByName(_ context.Context, name string) (domain.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, institution := range r.institutions {
		if institution.Name == name {
			return institution, nil
		}
	}
	return domain.Institution{}, commons.ErrRecordNotFound
}

func (r *InstitutionRepository) AddInstitution(_ context.Context, institution domain.Institution) (domain.Institution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	institution.InstitutionID = r.nextID
	r.nextID++
	r.institutions[institution.InstitutionID] = institution
	return institution, nil
}
