package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error)
	GetAccount(ctx context.Context, companyID, code string) (*domain.Account, error)
	GetBalance(ctx context.Context, periodID, code string) (*domain.AccountBalance, error)
}

// AccountHandler handles chart-of-account HTTP requests.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// List lists chart accounts.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := usecase.ClampPagination(
		parseIntQuery(r, "limit", usecase.DefaultPageSize),
		parseIntQuery(r, "offset", 0),
	)

	accounts, err := h.accountUC.ListAccounts(r.Context(), usecase.ListAccountsInput{
		CompanyID: r.URL.Query().Get("company_id"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list accounts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListAccountsResponse{
		Accounts: dto.AccountsFromDomain(accounts),
		Total:    int64(len(accounts)),
	})
}

// Get retrieves an account by code.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	account, err := h.accountUC.GetAccount(r.Context(), r.URL.Query().Get("company_id"), code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}

// GetBalance retrieves an account's accumulated balance for a period.
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	periodID := r.URL.Query().Get("period_id")
	if code == "" || periodID == "" {
		writeError(w, http.StatusBadRequest, "missing account code or period_id", "")
		return
	}

	balance, err := h.accountUC.GetBalance(r.Context(), periodID, code)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceFromDomain(balance))
}
