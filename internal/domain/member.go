package domain

type Member struct {
	MemberID      int64
	GivenName     string
	Surname       string
	InstitutionID int64
	Accounts      []Account
}
