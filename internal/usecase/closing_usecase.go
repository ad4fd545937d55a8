package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/domain"
)

// ClosingUseCase orchestrates closing runs: it reads a consistent snapshot,
// invokes the pure engine, and on the committing path persists the proposals
// atomically. The engine itself never touches storage.
type ClosingUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	balanceRepo BalanceRepository
	periodRepo  PeriodRepository
	txRepo      TransactionRepository
	idGen       IDGenerator
	rules       classify.RuleSet
	keys        closing.KeyAccounts
	options     closing.Options
}

// NewClosingUseCase creates a new ClosingUseCase.
func NewClosingUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	balanceRepo BalanceRepository,
	periodRepo PeriodRepository,
	txRepo TransactionRepository,
	idGen IDGenerator,
	rules classify.RuleSet,
	keys closing.KeyAccounts,
	options closing.Options,
) *ClosingUseCase {
	return &ClosingUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		periodRepo:  periodRepo,
		txRepo:      txRepo,
		idGen:       idGen,
		rules:       rules,
		keys:        keys,
		options:     options,
	}
}

// snapshot loads everything one engine run consumes.
func (uc *ClosingUseCase) snapshot(ctx context.Context, periodID string) (closing.Input, error) {
	period, err := uc.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return closing.Input{}, err
	}

	accounts, err := uc.accountRepo.ListAll(ctx, period.CompanyID)
	if err != nil {
		return closing.Input{}, fmt.Errorf("load chart: %w", err)
	}

	balances, err := uc.balanceRepo.ForPeriod(ctx, periodID)
	if err != nil {
		return closing.Input{}, fmt.Errorf("load balances: %w", err)
	}

	return closing.Input{
		Accounts: accounts,
		Balances: balances,
		Period:   period,
		Rules:    uc.rules,
		Keys:     uc.keys,
		Options:  uc.options,
	}, nil
}

// PreviewAdjustments computes AITB and depreciation proposals without
// persisting anything.
func (uc *ClosingUseCase) PreviewAdjustments(ctx context.Context, periodID string) (*closing.Result, error) {
	in, err := uc.snapshot(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return closing.Adjustments(in)
}

// PreviewClosing computes the full closing set without persisting anything.
// It is legal to preview an already-closed period.
func (uc *ClosingUseCase) PreviewClosing(ctx context.Context, periodID string) (*closing.Result, error) {
	in, err := uc.snapshot(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return closing.Close(in)
}

// RunClosing executes and persists a closing run. The double-close guard
// lives here, before the engine is invoked: the engine is not idempotent and
// persisting two runs would double-post every entry.
func (uc *ClosingUseCase) RunClosing(ctx context.Context, periodID string) (*closing.Result, error) {
	in, err := uc.snapshot(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if in.Period.Closed {
		return nil, domain.ErrPeriodAlreadyClosed
	}
	exists, err := uc.txRepo.ExistsForPeriod(ctx, periodID, domain.KindClosing)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPeriodAlreadyClosed
	}

	result, err := closing.Close(in)
	if err != nil {
		return nil, err
	}

	for _, t := range result.Transactions {
		t.ID = uc.idGen.Generate()
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := uc.txRepo.CreateBatch(ctx, tx, periodID, result.Transactions); err != nil {
		return nil, fmt.Errorf("persist closing set: %w", err)
	}
	if err := uc.periodRepo.MarkClosed(ctx, tx, periodID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("mark period closed: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit closing set: %w", err)
	}

	return result, nil
}
