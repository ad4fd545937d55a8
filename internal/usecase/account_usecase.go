package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/domain"
)

// ChartSampleLimit caps the number of codes fetched for structural analysis.
const ChartSampleLimit = 500

// profileCacheTTL bounds how long an inferred chart profile is reused
// before the code sample is re-analyzed.
const profileCacheTTL = 15 * time.Minute

// AccountUseCase serves chart reads and the analysis endpoints.
type AccountUseCase struct {
	accountRepo AccountRepository
	balanceRepo BalanceRepository
	cache       Cache
	rules       classify.RuleSet
}

// NewAccountUseCase creates a new AccountUseCase. cache may be nil,
// in which case every analysis reads the chart from the repository.
func NewAccountUseCase(accountRepo AccountRepository, balanceRepo BalanceRepository, cache Cache, rules classify.RuleSet) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		balanceRepo: balanceRepo,
		cache:       cache,
		rules:       rules,
	}
}

// ListAccountsInput holds list parameters.
type ListAccountsInput struct {
	CompanyID string
	Limit     int
	Offset    int
}

// ListAccounts lists chart accounts.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	return uc.accountRepo.List(ctx, input.CompanyID, input.Limit, input.Offset)
}

// GetAccount retrieves one account by code.
func (uc *AccountUseCase) GetAccount(ctx context.Context, companyID, code string) (*domain.Account, error) {
	return uc.accountRepo.GetByCode(ctx, companyID, code)
}

// GetBalance retrieves an account's accumulated period balance.
func (uc *AccountUseCase) GetBalance(ctx context.Context, periodID, code string) (*domain.AccountBalance, error) {
	return uc.balanceRepo.ForAccount(ctx, periodID, code)
}

// AnalyzeChart infers the structural profile of a company's code scheme.
// Results are cached per company since the chart rarely changes.
func (uc *AccountUseCase) AnalyzeChart(ctx context.Context, companyID string) (chart.Profile, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, "profile:"+companyID); err == nil {
			var profile chart.Profile
			if json.Unmarshal([]byte(cached), &profile) == nil {
				return profile, nil
			}
		}
	}

	codes, err := uc.accountRepo.Codes(ctx, companyID, ChartSampleLimit)
	if err != nil {
		return chart.Profile{}, err
	}
	profile := chart.Analyze(codes)

	if uc.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			// Cache failures are non-fatal; the profile was computed anyway.
			_ = uc.cache.Set(ctx, "profile:"+companyID, string(data), profileCacheTTL)
		}
	}
	return profile, nil
}

// ClassifyAccount classifies one account against the company's chart.
func (uc *AccountUseCase) ClassifyAccount(ctx context.Context, companyID, code, name string) (classify.Result, error) {
	accounts, err := uc.accountRepo.ListAll(ctx, companyID)
	if err != nil {
		return classify.Result{}, err
	}

	byCode := make(map[string]*domain.Account, len(accounts))
	codes := make([]string, 0, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
		codes = append(codes, a.Code)
	}

	profile := chart.Analyze(codes)
	return classify.Classify(code, name, uc.rules, profile, byCode), nil
}
