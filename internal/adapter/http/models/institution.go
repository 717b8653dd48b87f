package models

import "github.com/api-sage/banking-api/internal/domain"

type InstitutionDto struct {
	InstitutionID int64  `json:"institutionId"`
	Name          string `json:"name"`
}

func InstitutionFromDomain(institution domain.Institution) InstitutionDto {
	return InstitutionDto{
		InstitutionID: institution.InstitutionID,
		Name:          institution.Name,
	}
}

func InstitutionsFromDomain(institutions []domain.Institution) []InstitutionDto {
	out := make([]InstitutionDto, 0, len(institutions))
	for _, institution := range institutions {
		out = append(out, InstitutionFromDomain(institution))
	}
	return out
}

func (d InstitutionDto) ToDomain() domain.Institution {
	return domain.Institution{
		InstitutionID: d.InstitutionID,
		Name:          d.Name,
	}
}
