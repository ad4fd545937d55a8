package mocks

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	ListFunc      func(ctx context.Context, companyID string, limit, offset int) ([]*domain.Account, error)
	ListAllFunc   func(ctx context.Context, companyID string) ([]*domain.Account, error)
	GetByCodeFunc func(ctx context.Context, companyID, code string) (*domain.Account, error)
	CodesFunc     func(ctx context.Context, companyID string, limit int) ([]string, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

// Seed registers accounts returned by the default implementations.
func (m *MockAccountRepository) Seed(accounts ...*domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range accounts {
		m.accounts[a.Code] = a
	}
}

func (m *MockAccountRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, companyID, limit, offset)
	}
	return m.ListAll(ctx, companyID)
}

func (m *MockAccountRepository) ListAll(ctx context.Context, companyID string) ([]*domain.Account, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, companyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, a)
	}
	return out, nil
}

func (m *MockAccountRepository) GetByCode(ctx context.Context, companyID, code string) (*domain.Account, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, companyID, code)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[code]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) Codes(ctx context.Context, companyID string, limit int) ([]string, error) {
	if m.CodesFunc != nil {
		return m.CodesFunc(ctx, companyID, limit)
	}
	accounts, _ := m.ListAll(ctx, companyID)
	codes := make([]string, 0, len(accounts))
	for _, a := range accounts {
		codes = append(codes, a.Code)
	}
	return codes, nil
}

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	Balances map[string]*domain.AccountBalance

	ForPeriodFunc  func(ctx context.Context, periodID string) (map[string]*domain.AccountBalance, error)
	ForAccountFunc func(ctx context.Context, periodID, code string) (*domain.AccountBalance, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{Balances: make(map[string]*domain.AccountBalance)}
}

func (m *MockBalanceRepository) ForPeriod(ctx context.Context, periodID string) (map[string]*domain.AccountBalance, error) {
	if m.ForPeriodFunc != nil {
		return m.ForPeriodFunc(ctx, periodID)
	}
	return m.Balances, nil
}

func (m *MockBalanceRepository) ForAccount(ctx context.Context, periodID, code string) (*domain.AccountBalance, error) {
	if m.ForAccountFunc != nil {
		return m.ForAccountFunc(ctx, periodID, code)
	}
	if b, ok := m.Balances[code]; ok {
		return b, nil
	}
	return nil, domain.ErrAccountNotFound
}

// MockPeriodRepository is a mock implementation of PeriodRepository.
type MockPeriodRepository struct {
	mu      sync.Mutex
	periods map[string]*domain.FiscalPeriod
	Closed  []string

	GetByIDFunc    func(ctx context.Context, id string) (*domain.FiscalPeriod, error)
	ListFunc       func(ctx context.Context, companyID string, limit, offset int) ([]*domain.FiscalPeriod, error)
	MarkClosedFunc func(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error
}

func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{periods: make(map[string]*domain.FiscalPeriod)}
}

func (m *MockPeriodRepository) Seed(periods ...*domain.FiscalPeriod) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range periods {
		m.periods[p.ID] = p
	}
}

func (m *MockPeriodRepository) GetByID(ctx context.Context, id string) (*domain.FiscalPeriod, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPeriodNotFound
}

func (m *MockPeriodRepository) List(ctx context.Context, companyID string, limit, offset int) ([]*domain.FiscalPeriod, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, companyID, limit, offset)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.FiscalPeriod, 0, len(m.periods))
	for _, p := range m.periods {
		out = append(out, p)
	}
	return out, nil
}

func (m *MockPeriodRepository) MarkClosed(ctx context.Context, tx usecase.Transaction, id string, closedAt time.Time) error {
	if m.MarkClosedFunc != nil {
		return m.MarkClosedFunc(ctx, tx, id, closedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = append(m.Closed, id)
	return nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu        sync.Mutex
	Persisted []*domain.ProposedTransaction

	CreateBatchFunc     func(ctx context.Context, tx usecase.Transaction, periodID string, txs []*domain.ProposedTransaction) error
	ExistsForPeriodFunc func(ctx context.Context, periodID string, kind domain.TransactionKind) (bool, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) CreateBatch(ctx context.Context, tx usecase.Transaction, periodID string, txs []*domain.ProposedTransaction) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, tx, periodID, txs)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persisted = append(m.Persisted, txs...)
	return nil
}

func (m *MockTransactionRepository) ExistsForPeriod(ctx context.Context, periodID string, kind domain.TransactionKind) (bool, error) {
	if m.ExistsForPeriodFunc != nil {
		return m.ExistsForPeriodFunc(ctx, periodID, kind)
	}
	return false, nil
}

// MockTransaction is a mock database transaction.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	m.RolledBack = true
	return nil
}

// MockTransactionManager is a mock TransactionManager.
type MockTransactionManager struct {
	Tx        *MockTransaction
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{Tx: &MockTransaction{}}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return m.Tx, nil
}

// ErrCacheMiss is returned by MockCache.Get for absent keys.
var ErrCacheMiss = errors.New("cache: key not found")

// MockCache is an in-memory Cache.
type MockCache struct {
	mu      sync.Mutex
	entries map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{entries: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return "", ErrCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// MockIDGenerator returns sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (m *MockIDGenerator) Generate() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}
