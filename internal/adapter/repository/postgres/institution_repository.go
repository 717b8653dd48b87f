package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

type InstitutionRepository struct {
	db *sql.DB
}

func NewInstitutionRepository(db *sql.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

func (r *InstitutionRepository) GetInstitutions(ctx context.Context) ([]domain.Institution, error) {
	const query = `
SELECT institution_id, name
FROM institutions
ORDER BY institution_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	defer rows.Close()

	institutions := make([]domain.Institution, 0)
	for rows.Next() {
		var institution domain.Institution
		if err := rows.Scan(&institution.InstitutionID, &institution.Name); err != nil {
			return nil, fmt.Errorf("scan institution: %w", err)
		}
		institutions = append(institutions, institution)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate institutions: %w", err)
	}

	return institutions, nil
}

func (r *InstitutionRepository) GetInstitution(ctx context.Context, id int64) (domain.Institution, error) {
	const query = `
SELECT institution_id, name
FROM institutions
WHERE institution_id = $1`

	var institution domain.Institution
	err := r.db.QueryRowContext(ctx, query, id).Scan(&institution.InstitutionID, &institution.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Institution{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Institution{}, fmt.Errorf("get institution %d: %w", id, err)
	}

	return institution, nil
}

func (r *InstitutionRepository) GetInstitutionByName(ctx context.Context, name string) (domain.Institution, error) {
	const query = `
SELECT institution_id, name
FROM institutions
WHERE name = $1`

	var institution domain.Institution
	err := r.db.QueryRowContext(ctx, query, name).Scan(&institution.InstitutionID, &institution.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Institution{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Institution{}, fmt.Errorf("get institution by name %q: %w", name, err)
	}

	return institution, nil
}

func (r *InstitutionRepository) AddInstitution(ctx context.Context, institution domain.Institution) (domain.Institution, error) {
	const query = `
INSERT INTO institutions (name)
VALUES ($1)
RETURNING institution_id`

	if err := r.db.QueryRowContext(ctx, query, institution.Name).Scan(&institution.InstitutionID); err != nil {
		return domain.Institution{}, fmt.Errorf("add institution %q: %w", institution.Name, err)
	}

	return institution, nil
}
