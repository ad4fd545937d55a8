package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
	"github.com/quipuapp/quipu/internal/usecase/mocks"
)

func closingFixture() (*mocks.MockAccountRepository, *mocks.MockBalanceRepository, *mocks.MockPeriodRepository) {
	accountRepo := mocks.NewMockAccountRepository()
	accountRepo.Seed(
		&domain.Account{Code: "1101", Name: "Caja Moneda Nacional", Type: domain.TypeAsset, CompanyID: "co-1"},
		&domain.Account{Code: "2301", Name: "IUE por Pagar", Type: domain.TypeLiability, CompanyID: "co-1"},
		&domain.Account{Code: "3101", Name: "Capital Social", Type: domain.TypeEquity, CompanyID: "co-1"},
		&domain.Account{Code: "3201", Name: "Resumen de Perdidas y Ganancias", Type: domain.TypeEquity, CompanyID: "co-1"},
		&domain.Account{Code: "3301", Name: "Resultados Acumulados", Type: domain.TypeEquity, CompanyID: "co-1"},
		&domain.Account{Code: "3401", Name: "Reserva Legal", Type: domain.TypeEquity, CompanyID: "co-1"},
		&domain.Account{Code: "4101", Name: "Ventas", Type: domain.TypeIncome, CompanyID: "co-1"},
		&domain.Account{Code: "5101", Name: "Sueldos y Salarios", Type: domain.TypeExpense, CompanyID: "co-1"},
	)

	balanceRepo := mocks.NewMockBalanceRepository()
	balanceRepo.Balances = map[string]*domain.AccountBalance{
		"1101": {AccountCode: "1101", TotalDebit: decimal.NewFromInt(6000)},
		"3101": {AccountCode: "3101", TotalCredit: decimal.NewFromInt(3000)},
		"4101": {AccountCode: "4101", TotalCredit: decimal.NewFromInt(4000)},
		"5101": {AccountCode: "5101", TotalDebit: decimal.NewFromInt(1000)},
	}

	periodRepo := mocks.NewMockPeriodRepository()
	periodRepo.Seed(&domain.FiscalPeriod{
		ID:          "2024",
		CompanyID:   "co-1",
		Name:        "Gestion 2024",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		InitialRate: decimal.NewFromInt(1),
		FinalRate:   decimal.NewFromInt(1),
	})

	return accountRepo, balanceRepo, periodRepo
}

func closingKeys() closing.KeyAccounts {
	return closing.KeyAccounts{
		IncomeSummary:    "3201",
		RetainedEarnings: "3301",
		TaxPayable:       "2301",
		LegalReserve:     "3401",
	}
}

func newClosingFixtureUseCase(
	accountRepo *mocks.MockAccountRepository,
	balanceRepo *mocks.MockBalanceRepository,
	periodRepo *mocks.MockPeriodRepository,
	txManager *mocks.MockTransactionManager,
	txRepo *mocks.MockTransactionRepository,
) *usecase.ClosingUseCase {
	return usecase.NewClosingUseCase(
		txManager, accountRepo, balanceRepo, periodRepo, txRepo,
		&mocks.MockIDGenerator{}, classify.Default(), closingKeys(),
		closing.Options{EntityKind: "SRL"},
	)
}

func TestClosingUseCase_RunClosing(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	txManager := mocks.NewMockTransactionManager()
	txRepo := mocks.NewMockTransactionRepository()
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, txManager, txRepo)

	res, err := uc.RunClosing(context.Background(), "2024")
	if err != nil {
		t.Fatalf("RunClosing() error = %v", err)
	}

	if len(res.Transactions) == 0 {
		t.Fatal("no transactions generated")
	}
	for _, tx := range res.Transactions {
		if tx.ID == "" {
			t.Errorf("transaction %q has no ID", tx.Gloss)
		}
	}

	if len(txRepo.Persisted) != len(res.Transactions) {
		t.Errorf("persisted %d transactions, want %d", len(txRepo.Persisted), len(res.Transactions))
	}
	if len(periodRepo.Closed) != 1 || periodRepo.Closed[0] != "2024" {
		t.Errorf("closed periods = %v, want [2024]", periodRepo.Closed)
	}
	if !txManager.Tx.Committed {
		t.Error("database transaction was not committed")
	}
}

func TestClosingUseCase_RunClosingRejectsClosedPeriod(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	periodRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.FiscalPeriod, error) {
		return &domain.FiscalPeriod{
			ID:          id,
			Closed:      true,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			InitialRate: decimal.NewFromInt(1),
			FinalRate:   decimal.NewFromInt(1),
		}, nil
	}
	txRepo := mocks.NewMockTransactionRepository()
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), txRepo)

	_, err := uc.RunClosing(context.Background(), "2024")

	if !errors.Is(err, domain.ErrPeriodAlreadyClosed) {
		t.Errorf("error = %v, want ErrPeriodAlreadyClosed", err)
	}
	if len(txRepo.Persisted) != 0 {
		t.Error("closed period must not persist anything")
	}
}

func TestClosingUseCase_RunClosingRejectsExistingClosingSet(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	txRepo := mocks.NewMockTransactionRepository()
	txRepo.ExistsForPeriodFunc = func(ctx context.Context, periodID string, kind domain.TransactionKind) (bool, error) {
		return kind == domain.KindClosing, nil
	}
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), txRepo)

	_, err := uc.RunClosing(context.Background(), "2024")

	if !errors.Is(err, domain.ErrPeriodAlreadyClosed) {
		t.Errorf("error = %v, want ErrPeriodAlreadyClosed", err)
	}
}

func TestClosingUseCase_RunClosingRollsBackOnPersistFailure(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	txManager := mocks.NewMockTransactionManager()
	txRepo := mocks.NewMockTransactionRepository()
	txRepo.CreateBatchFunc = func(ctx context.Context, tx usecase.Transaction, periodID string, txs []*domain.ProposedTransaction) error {
		return errors.New("disk full")
	}
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, txManager, txRepo)

	_, err := uc.RunClosing(context.Background(), "2024")

	if err == nil {
		t.Fatal("expected persistence error")
	}
	if txManager.Tx.Committed {
		t.Error("failed run must not commit")
	}
	if !txManager.Tx.RolledBack {
		t.Error("failed run must roll back")
	}
	if len(periodRepo.Closed) != 0 {
		t.Error("failed run must not mark the period closed")
	}
}

func TestClosingUseCase_PreviewClosingDoesNotPersist(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	txRepo := mocks.NewMockTransactionRepository()
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), txRepo)

	res, err := uc.PreviewClosing(context.Background(), "2024")
	if err != nil {
		t.Fatalf("PreviewClosing() error = %v", err)
	}

	if len(res.Transactions) == 0 {
		t.Error("preview generated no transactions")
	}
	if len(txRepo.Persisted) != 0 {
		t.Error("preview must not persist")
	}
	if len(periodRepo.Closed) != 0 {
		t.Error("preview must not close the period")
	}
}

func TestClosingUseCase_PreviewWorksOnClosedPeriods(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	periodRepo.GetByIDFunc = func(ctx context.Context, id string) (*domain.FiscalPeriod, error) {
		return &domain.FiscalPeriod{
			ID:          id,
			Closed:      true,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			InitialRate: decimal.NewFromInt(1),
			FinalRate:   decimal.NewFromInt(1),
		}, nil
	}
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), mocks.NewMockTransactionRepository())

	if _, err := uc.PreviewClosing(context.Background(), "2024"); err != nil {
		t.Errorf("PreviewClosing() on closed period error = %v, want nil", err)
	}
}

func TestClosingUseCase_PreviewAdjustments(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), mocks.NewMockTransactionRepository())

	res, err := uc.PreviewAdjustments(context.Background(), "2024")
	if err != nil {
		t.Fatalf("PreviewAdjustments() error = %v", err)
	}

	// Flat index and no depreciable assets: a legal empty result.
	if res.Status != closing.StatusNothingToAdjust {
		t.Errorf("status = %s, want %s", res.Status, closing.StatusNothingToAdjust)
	}
}

func TestClosingUseCase_UnknownPeriod(t *testing.T) {
	accountRepo, balanceRepo, periodRepo := closingFixture()
	uc := newClosingFixtureUseCase(accountRepo, balanceRepo, periodRepo, mocks.NewMockTransactionManager(), mocks.NewMockTransactionRepository())

	if _, err := uc.RunClosing(context.Background(), "nope"); !errors.Is(err, domain.ErrPeriodNotFound) {
		t.Errorf("error = %v, want ErrPeriodNotFound", err)
	}
}
