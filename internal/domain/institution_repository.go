package domain

import "context"

type InstitutionRepository interface {
	GetInstitutions(ctx context.Context) ([]Institution, error)
	GetInstitution(ctx context.Context, id int64) (Institution, error)
	GetInstitutionByName(ctx context.Context, name string) (Institution, error)
	AddInstitution(ctx context.Context, institution Institution) (Institution, error)
}
