package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
)

// PeriodRepository implements usecase.PeriodRepository over pgx.
type PeriodRepository struct {
	pool *pgxpool.Pool
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{pool: pool}
}

const periodColumns = `id, company_id, name, start_date, end_date, closed,
	initial_rate::text, final_rate::text, created_at, updated_at`

func scanPeriod(row pgx.Row) (*domain.FiscalPeriod, error) {
	var p domain.FiscalPeriod
	var initial, final string
	err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.StartDate, &p.EndDate, &p.Closed,
		&initial, &final, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.InitialRate, err = parseNumeric(initial); err != nil {
		return nil, fmt.Errorf("parse initial rate: %w", err)
	}
	if p.FinalRate, err = parseNumeric(final); err != nil {
		return nil, fmt.Errorf("parse final rate: %w", err)
	}
	return &p, nil
}

// GetByID retrieves a fiscal period by id.
func (r *PeriodRepository) GetByID(ctx context.Context, id string) (*domain.FiscalPeriod, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+periodColumns+` FROM fiscal_periods WHERE id = $1`, id)

	period, err := scanPeriod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}
		return nil, err
	}
	return period, nil
}

// List lists fiscal periods of a company, newest first.
func (r *PeriodRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*domain.FiscalPeriod, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+periodColumns+` FROM fiscal_periods
		 WHERE company_id = $1 ORDER BY end_date DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}
	defer rows.Close()

	var periods []*domain.FiscalPeriod
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, period)
	}
	return periods, rows.Err()
}

// MarkClosed flags a period as closed inside the given transaction.
func (r *PeriodRepository) MarkClosed(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE fiscal_periods SET closed = TRUE, updated_at = $2 WHERE id = $1 AND closed = FALSE`,
		id, closedAt)
	if err != nil {
		return fmt.Errorf("mark period closed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPeriodAlreadyClosed
	}
	return nil
}
