package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
)

type MemberRepository struct {
	mu      sync.Mutex
	nextID  int64
	members map[int64]domain.Member
}

func NewMemberRepository(members ...domain.Member) *MemberRepository {
	repo := &MemberRepository{
		nextID:  1,
		members: make(map[int64]domain.Member, len(members)),
	}
	for _, member := range members {
		repo.members[member.MemberID] = member
		if member.MemberID >= repo.nextID {
			repo.nextID = member.MemberID + 1
		}
	}
	return repo
}

func (r *MemberRepository) GetMembers(_ context.Context) ([]domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Member, 0, len(r.members))
	for _, member := range r.members {
		out = append(out, member)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out, nil
}

func (r *MemberRepository) GetMember(_ context.Context, id int64) (domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member, ok := r.members[id]
	if !ok {
		return domain.Member{}, commons.ErrRecordNotFound
	}
	return member, nil
}

func (r *MemberRepository) AddMember(_ context.Context, member domain.Member) (domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	member.MemberID = r.nextID
	r.nextID++
	if member.Accounts == nil {
		member.Accounts = []domain.Account{}
	}
	r.members[member.MemberID] = member
	return member, nil
}

func (r *MemberRepository) UpdateMember(_ context.Context, member domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.members[member.MemberID]
	if !ok {
		return commons.ErrRecordNotFound
	}

	stored.GivenName = member.GivenName
	stored.Surname = member.Surname
	stored.InstitutionID = member.InstitutionID
	r.members[member.MemberID] = stored
	return nil
}

func (r *MemberRepository) DeleteMember(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[id]; !ok {
		return commons.ErrRecordNotFound
	}
	delete(r.members, id)
	return nil
}
