package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/banking-api/internal/commons"
	"github.com/api-sage/banking-api/internal/domain"
	"github.com/shopspring/decimal"
)

type MemberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) GetMembers(ctx context.Context) ([]domain.Member, error) {
	const query = `
SELECT member_id, given_name, surname, institution_id
FROM members
ORDER BY member_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(&member.MemberID, &member.GivenName, &member.Surname, &member.InstitutionID); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		member.Accounts = []domain.Account{}
		index[member.MemberID] = len(members)
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	accounts, err := r.accountsByMember(ctx)
	if err != nil {
		return nil, err
	}
	for memberID, owned := range accounts {
		if i, ok := index[memberID]; ok {
			members[i].Accounts = owned
		}
	}

	return members, nil
}

func (r *MemberRepository) GetMember(ctx context.Context, id int64) (domain.Member, error) {
	const query = `
SELECT member_id, given_name, surname, institution_id
FROM members
WHERE member_id = $1`

	var member domain.Member
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.MemberID,
		&member.GivenName,
		&member.Surname,
		&member.InstitutionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Member{}, commons.ErrRecordNotFound
	}
	if err != nil {
		return domain.Member{}, fmt.Errorf("get member %d: %w", id, err)
	}

	member.Accounts, err = r.memberAccounts(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}

	return member, nil
}

func (r *MemberRepository) AddMember(ctx context.Context, member domain.Member) (domain.Member, error) {
	const query = `
INSERT INTO members (given_name, surname, institution_id)
VALUES ($1, $2, $3)
RETURNING member_id`

	err := r.db.QueryRowContext(ctx, query, member.GivenName, member.Surname, member.InstitutionID).
		Scan(&member.MemberID)
	if err != nil {
		return domain.Member{}, fmt.Errorf("add member: %w", err)
	}

	member.Accounts = []domain.Account{}
	return member, nil
}

func (r *MemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	const query = `
UPDATE members
SET given_name = $2,
    surname = $3,
    institution_id = $4
WHERE member_id = $1`

	result, err := r.db.ExecContext(ctx, query, member.MemberID, member.GivenName, member.Surname, member.InstitutionID)
	if err != nil {
		return fmt.Errorf("update member %d: %w", member.MemberID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update member rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}

	return nil
}

// DeleteMember relies on the accounts table's ON DELETE CASCADE to remove
// the member's accounts in the same statement.
func (r *MemberRepository) DeleteMember(ctx context.Context, id int64) error {
	const query = `
DELETE FROM members
WHERE member_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete member %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete member rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}

	return nil
}

func (r *MemberRepository) memberAccounts(ctx context.Context, memberID int64) ([]domain.Account, error) {
	const query = `
SELECT account_id, balance, institution_id, member_id, version
FROM accounts
WHERE member_id = $1
ORDER BY account_id`

	rows, err := r.db.QueryContext(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("list accounts for member %d: %w", memberID, err)
	}
	defer rows.Close()

	return scanAccounts(rows)
}

func (r *MemberRepository) accountsByMember(ctx context.Context) (map[int64][]domain.Account, error) {
	const query = `
SELECT account_id, balance, institution_id, member_id, version
FROM accounts
ORDER BY account_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	accounts, err := scanAccounts(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]domain.Account)
	for _, account := range accounts {
		grouped[account.MemberID] = append(grouped[account.MemberID], account)
	}
	return grouped, nil
}

func scanAccounts(rows *sql.Rows) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		var balance string
		if err := rows.Scan(&account.AccountID, &balance, &account.InstitutionID, &account.MemberID, &account.Version); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}

		parsed, err := decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("parse balance for account %d: %w", account.AccountID, err)
		}
		account.Balance = parsed
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}
