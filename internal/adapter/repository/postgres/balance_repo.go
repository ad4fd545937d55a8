package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/domain"
)

// BalanceRepository implements usecase.BalanceRepository over pgx.
// Numeric columns travel as text so decimal parses them without
// float intermediaries.
type BalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{pool: pool}
}

// ForPeriod returns all account balances of a fiscal period keyed by code.
func (r *BalanceRepository) ForPeriod(ctx context.Context, periodID string) (map[string]*domain.AccountBalance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT account_code, total_debit::text, total_credit::text
		 FROM account_balances WHERE period_id = $1`,
		periodID)
	if err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]*domain.AccountBalance)
	for rows.Next() {
		balance, err := scanBalance(rows)
		if err != nil {
			return nil, err
		}
		balances[balance.AccountCode] = balance
	}
	return balances, rows.Err()
}

// ForAccount returns a single account's balance in a period.
func (r *BalanceRepository) ForAccount(ctx context.Context, periodID, accountCode string) (*domain.AccountBalance, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT account_code, total_debit::text, total_credit::text
		 FROM account_balances WHERE period_id = $1 AND account_code = $2`,
		periodID, accountCode)

	balance, err := scanBalance(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.AccountBalance{
				AccountCode: accountCode,
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
			}, nil
		}
		return nil, err
	}
	return balance, nil
}

func scanBalance(row pgx.Row) (*domain.AccountBalance, error) {
	var b domain.AccountBalance
	var debit, credit string
	if err := row.Scan(&b.AccountCode, &debit, &credit); err != nil {
		return nil, err
	}
	var err error
	if b.TotalDebit, err = decimal.NewFromString(debit); err != nil {
		return nil, fmt.Errorf("parse debit for %s: %w", b.AccountCode, err)
	}
	if b.TotalCredit, err = decimal.NewFromString(credit); err != nil {
		return nil, fmt.Errorf("parse credit for %s: %w", b.AccountCode, err)
	}
	return &b, nil
}
