package domain

type Institution struct {
	InstitutionID int64
	Name          string
}
