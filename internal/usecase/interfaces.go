package usecase

import (
	"context"
	"time"

	"github.com/quipuapp/quipu/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	List(ctx context.Context, companyID string, limit, offset int) ([]*domain.Account, error)
	ListAll(ctx context.Context, companyID string) ([]*domain.Account, error)
	GetByCode(ctx context.Context, companyID, code string) (*domain.Account, error)
	Codes(ctx context.Context, companyID string, limit int) ([]string, error)
}

// BalanceRepository defines data access for accumulated period balances.
type BalanceRepository interface {
	ForPeriod(ctx context.Context, periodID string) (map[string]*domain.AccountBalance, error)
	ForAccount(ctx context.Context, periodID, code string) (*domain.AccountBalance, error)
}

// PeriodRepository defines data access for fiscal periods.
type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (*domain.FiscalPeriod, error)
	List(ctx context.Context, companyID string, limit, offset int) ([]*domain.FiscalPeriod, error)
	MarkClosed(ctx context.Context, tx Transaction, id string, closedAt time.Time) error
}

// TransactionRepository persists generated transaction sets.
type TransactionRepository interface {
	CreateBatch(ctx context.Context, tx Transaction, periodID string, txs []*domain.ProposedTransaction) error
	ExistsForPeriod(ctx context.Context, periodID string, kind domain.TransactionKind) (bool, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
