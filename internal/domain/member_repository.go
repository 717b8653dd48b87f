package domain

import "context"

type MemberRepository interface {
	// GetMembers returns all members with their accounts embedded.
	GetMembers(ctx context.Context) ([]Member, error)
	GetMember(ctx context.Context, id int64) (Member, error)
	AddMember(ctx context.Context, member Member) (Member, error)
	UpdateMember(ctx context.Context, member Member) error

	// DeleteMember removes the member and, through the schema's cascade,
	// every account it owns.
	DeleteMember(ctx context.Context, id int64) error
}
