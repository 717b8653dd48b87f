package models

import (
	"strings"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

type MemberDto struct {
	MemberID      int64        `json:"memberId"`
	GivenName     string       `json:"givenName"`
	Surname       string       `json:"surname"`
	InstitutionID int64        `json:"institutionId"`
	Accounts      []AccountDto `json:"accounts"`
}

func (d MemberDto) Validate() commons.FieldErrors {
	errs := commons.FieldErrors{}

	if strings.TrimSpace(d.GivenName) == "" {
		errs.Add("givenName", "The GivenName field is required")
	}
	if strings.TrimSpace(d.Surname) == "" {
		errs.Add("surname", "The Surname field is required")
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func MemberFromDomain(member domain.Member) MemberDto {
	return MemberDto{
		MemberID:      member.MemberID,
		GivenName:     member.GivenName,
		Surname:       member.Surname,
		InstitutionID: member.InstitutionID,
		Accounts:      AccountsFromDomain(member.Accounts),
	}
}

func MembersFromDomain(members []domain.Member) []MemberDto {
	out := make([]MemberDto, 0, len(members))
	for _, member := range members {
		out = append(out, MemberFromDomain(member))
	}
	return out
}

func (d MemberDto) ToDomain() domain.Member {
	return domain.Member{
		MemberID:      d.MemberID,
		GivenName:     strings.TrimSpace(d.GivenName),
		Surname:       strings.TrimSpace(d.Surname),
		InstitutionID: d.InstitutionID,
	}
}
