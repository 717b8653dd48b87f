package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/api-sage/banking-api/internal/logger"
)

type MemberService struct {
	memberRepo      domain.MemberRepository
	institutionRepo domain.InstitutionRepository
}

func NewMemberService(memberRepo domain.MemberRepository, institutionRepo domain.InstitutionRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo, institutionRepo: institutionRepo}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	members, err := s.memberRepo.GetMembers(ctx)
	if err != nil {
		logger.Error("member service list failed", err, nil)
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *MemberService) GetMember(ctx context.Context, id int64) (domain.Member, error) {
	member, err := s.memberRepo.GetMember(ctx, id)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Member{}, err
		}
		logger.Error("member service get failed", err, logger.Fields{
			"memberId": id,
		})
		return domain.Member{}, fmt.Errorf("get member %d: %w", id, err)
	}
	return member, nil
}

func (s *MemberService) AddMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	logger.Info("member service add request", logger.Fields{
		"institutionId": member.InstitutionID,
		"givenName":     member.GivenName,
		"surname":       member.Surname,
	})

	if err := s.requireInstitution(ctx, member.InstitutionID); err != nil {
		return domain.Member{}, err
	}

	created, err := s.memberRepo.AddMember(ctx, member)
	if err != nil {
		logger.Error("member service add failed", err, logger.Fields{
			"institutionId": member.InstitutionID,
		})
		return domain.Member{}, fmt.Errorf("add member: %w", err)
	}

	logger.Info("member service add success", logger.Fields{
		"memberId":      created.MemberID,
		"institutionId": created.InstitutionID,
	})
	return created, nil
}

func (s *MemberService) UpdateMember(ctx context.Context, member domain.Member) error {
	logger.Info("member service update request", logger.Fields{
		"memberId":      member.MemberID,
		"institutionId": member.InstitutionID,
	})

	if err := s.requireInstitution(ctx, member.InstitutionID); err != nil {
		return err
	}

	if _, err := s.memberRepo.GetMember(ctx, member.MemberID); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return &commons.NotFoundError{Field: "memberId", Message: "Member not found."}
		}
		logger.Error("member service update fetch failed", err, logger.Fields{
			"memberId": member.MemberID,
		})
		return fmt.Errorf("get member %d: %w", member.MemberID, err)
	}

	if err := s.memberRepo.UpdateMember(ctx, member); err != nil {
		logger.Error("member service update failed", err, logger.Fields{
			"memberId": member.MemberID,
		})
		return fmt.Errorf("update member %d: %w", member.MemberID, err)
	}
	return nil
}

func (s *MemberService) DeleteMember(ctx context.Context, id int64) error {
	logger.Info("member service delete request", logger.Fields{
		"memberId": id,
	})

	if _, err := s.memberRepo.GetMember(ctx, id); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return err
		}
		logger.Error("member service delete fetch failed", err, logger.Fields{
			"memberId": id,
		})
		return fmt.Errorf("get member %d: %w", id, err)
	}

	if err := s.memberRepo.DeleteMember(ctx, id); err != nil {
		logger.Error("member service delete failed", err, logger.Fields{
			"memberId": id,
		})
		return fmt.Errorf("delete member %d: %w", id, err)
	}
	return nil
}

func (s *MemberService) requireInstitution(ctx context.Context, institutionID int64) error {
	_, err := s.institutionRepo.GetInstitution(ctx, institutionID)
	if err == nil {
		return nil
	}
	if errors.Is(err, commons.ErrRecordNotFound) {
		return &commons.NotFoundError{Field: "institutionId", Message: "Institution not found."}
	}
	logger.Error("member service institution check failed", err, logger.Fields{
		"institutionId": institutionID,
	})
	return fmt.Errorf("get institution %d: %w", institutionID, err)
}
