package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over pgx.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// CreateBatch persists a set of proposed transactions and their entries
// inside the given database transaction.
func (r *TransactionRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, periodID string, txs []*domain.ProposedTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	for _, t := range txs {
		_, err := pgxTx.Exec(ctx,
			`INSERT INTO transactions (id, period_id, kind, gloss, entry_date)
			 VALUES ($1, $2, $3, $4, $5)`,
			t.ID, periodID, string(t.Kind), t.Gloss, t.Date)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}

		for i, e := range t.Entries {
			_, err := pgxTx.Exec(ctx,
				`INSERT INTO transaction_entries (transaction_id, line, account_code, account_name, debit, credit)
				 VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric)`,
				t.ID, i+1, e.AccountCode, e.AccountName, e.Debit.String(), e.Credit.String())
			if err != nil {
				return fmt.Errorf("insert entry %d of %s: %w", i+1, t.ID, err)
			}
		}
	}
	return nil
}

// ExistsForPeriod reports whether any transaction of the given kind
// was already persisted for a period.
func (r *TransactionRepository) ExistsForPeriod(ctx context.Context, periodID string, kind domain.TransactionKind) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE period_id = $1 AND kind = $2)`,
		periodID, string(kind)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check transactions for period: %w", err)
	}
	return exists, nil
}
