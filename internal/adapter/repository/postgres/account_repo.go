package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quipuapp/quipu/internal/domain"
)

// AccountRepository implements usecase.AccountRepository over pgx.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `code, company_id, name, type, level, COALESCE(parent_code, ''), created_at, updated_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var typ string
	err := row.Scan(&a.Code, &a.CompanyID, &a.Name, &typ, &a.Level, &a.ParentCode, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.Type = domain.AccountType(typ)
	return &a, nil
}

// List lists accounts ordered by code.
func (r *AccountRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 ORDER BY code LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListAll returns the complete chart of a company.
func (r *AccountRepository) ListAll(ctx context.Context, companyID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 ORDER BY code`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("list chart: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// GetByCode retrieves an account by code.
func (r *AccountRepository) GetByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND code = $2`,
		companyID, code)

	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Codes samples account codes for structural analysis.
func (r *AccountRepository) Codes(ctx context.Context, companyID string, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT code FROM accounts WHERE company_id = $1 ORDER BY code LIMIT $2`,
		companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("sample codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}
