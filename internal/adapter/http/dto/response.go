package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/statement"
)

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// AccountResponse represents a chart account in API responses.
type AccountResponse struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Level      int       `json:"level"`
	ParentCode string    `json:"parent_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Code:       a.Code,
		Name:       a.Name,
		Type:       string(a.Type),
		Level:      a.Level,
		ParentCode: a.ParentCode,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account list.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// BalanceResponse represents an accumulated period balance.
type BalanceResponse struct {
	AccountCode string          `json:"account_code"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.AccountBalance) *BalanceResponse {
	return &BalanceResponse{
		AccountCode: b.AccountCode,
		TotalDebit:  b.TotalDebit,
		TotalCredit: b.TotalCredit,
		Balance:     b.Net(),
	}
}

// PeriodResponse represents a fiscal period.
type PeriodResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	Name        string          `json:"name"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	Closed      bool            `json:"closed"`
	InitialRate decimal.Decimal `json:"initial_rate"`
	FinalRate   decimal.Decimal `json:"final_rate"`
}

// PeriodFromDomain converts a domain period to a response.
func PeriodFromDomain(p *domain.FiscalPeriod) *PeriodResponse {
	return &PeriodResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Name:        p.Name,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Closed:      p.Closed,
		InitialRate: p.InitialRate,
		FinalRate:   p.FinalRate,
	}
}

// PeriodsFromDomain converts domain periods to responses.
func PeriodsFromDomain(periods []*domain.FiscalPeriod) []*PeriodResponse {
	result := make([]*PeriodResponse, len(periods))
	for i, p := range periods {
		result[i] = PeriodFromDomain(p)
	}
	return result
}

// ProfileResponse represents an inferred chart profile.
type ProfileResponse struct {
	Separator    string `json:"separator,omitempty"`
	HasSeparator bool   `json:"has_separator"`
	LevelLengths []int  `json:"level_lengths"`
	SmartCode    bool   `json:"smart_code"`
	MaxLevel     int    `json:"max_level"`
}

// ProfileFromChart converts a chart profile to a response.
func ProfileFromChart(p chart.Profile) *ProfileResponse {
	return &ProfileResponse{
		Separator:    p.Separator,
		HasSeparator: p.HasSeparator,
		LevelLengths: p.LevelLengths,
		SmartCode:    p.SmartCode,
		MaxLevel:     p.MaxLevel(),
	}
}

// ClassificationResponse represents one classification result.
type ClassificationResponse struct {
	Type           string   `json:"type"`
	Tags           []string `json:"tags,omitempty"`
	Source         string   `json:"source,omitempty"`
	MatchedPattern string   `json:"matched_pattern,omitempty"`
	Confidence     float64  `json:"confidence"`
}

// ClassificationFromResult converts a classify result to a response.
func ClassificationFromResult(r classify.Result) *ClassificationResponse {
	return &ClassificationResponse{
		Type:           string(r.Type),
		Tags:           r.Tags,
		Source:         r.Source,
		MatchedPattern: r.MatchedPattern,
		Confidence:     r.Confidence,
	}
}

// EntryResponse represents one transaction leg.
type EntryResponse struct {
	AccountCode string          `json:"account_code,omitempty"`
	AccountName string          `json:"account_name,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TransactionResponse represents one proposed transaction.
type TransactionResponse struct {
	ID      string          `json:"id,omitempty"`
	Gloss   string          `json:"gloss"`
	Kind    string          `json:"kind"`
	Date    time.Time       `json:"date"`
	Entries []EntryResponse `json:"entries"`
}

// ClosingResultResponse is the full engine output.
type ClosingResultResponse struct {
	Status       string                 `json:"status"`
	Transactions []*TransactionResponse `json:"transactions"`
	Totals       *TotalsResponse        `json:"totals,omitempty"`
	Summary      SummaryResponse        `json:"summary"`
}

// TotalsResponse mirrors the waterfall lines.
type TotalsResponse struct {
	VentasNetas            decimal.Decimal `json:"ventas_netas"`
	UtilidadBruta          decimal.Decimal `json:"utilidad_bruta"`
	TotalGastosOperativos  decimal.Decimal `json:"total_gastos_operativos"`
	UtilidadEnVentas       decimal.Decimal `json:"utilidad_en_ventas"`
	UtilidadOperativa      decimal.Decimal `json:"utilidad_operativa"`
	UtilidadBrutaEjercicio decimal.Decimal `json:"utilidad_bruta_ejercicio"`
	RemanenteCompensacion  decimal.Decimal `json:"remanente_compensacion"`
	BaseImponible          decimal.Decimal `json:"base_imponible"`
	IUE                    decimal.Decimal `json:"iue"`
	UtilidadNeta           decimal.Decimal `json:"utilidad_neta"`
	ReservaLegal           decimal.Decimal `json:"reserva_legal"`
	UtilidadLiquida        decimal.Decimal `json:"utilidad_liquida"`
}

// SummaryResponse aggregates run statistics.
type SummaryResponse struct {
	AccountsClassified int             `json:"accounts_classified"`
	AdjustedAccounts   int             `json:"adjusted_accounts"`
	DepreciatedAssets  int             `json:"depreciated_assets"`
	TotalAITB          decimal.Decimal `json:"total_aitb"`
	TotalDepreciation  decimal.Decimal `json:"total_depreciation"`
	TransactionCount   int             `json:"transaction_count"`
	PeriodStart        time.Time       `json:"period_start"`
	PeriodEnd          time.Time       `json:"period_end"`
}

// ClosingResultFromDomain converts an engine result to a response.
func ClosingResultFromDomain(r *closing.Result) *ClosingResultResponse {
	resp := &ClosingResultResponse{
		Status:       string(r.Status),
		Transactions: make([]*TransactionResponse, len(r.Transactions)),
		Summary: SummaryResponse{
			AccountsClassified: r.Summary.AccountsClassified,
			AdjustedAccounts:   r.Summary.AdjustedAccounts,
			DepreciatedAssets:  r.Summary.DepreciatedAssets,
			TotalAITB:          r.Summary.TotalAITB,
			TotalDepreciation:  r.Summary.TotalDepreciation,
			TransactionCount:   r.Summary.TransactionCount,
			PeriodStart:        r.Summary.PeriodStart,
			PeriodEnd:          r.Summary.PeriodEnd,
		},
	}
	for i, t := range r.Transactions {
		entries := make([]EntryResponse, len(t.Entries))
		for j, e := range t.Entries {
			entries[j] = EntryResponse{
				AccountCode: e.AccountCode,
				AccountName: e.AccountName,
				Debit:       e.Debit,
				Credit:      e.Credit,
			}
		}
		resp.Transactions[i] = &TransactionResponse{
			ID:      t.ID,
			Gloss:   t.Gloss,
			Kind:    string(t.Kind),
			Date:    t.Date,
			Entries: entries,
		}
	}
	if r.Status == closing.StatusOK {
		resp.Totals = totalsFromStatement(r.Totals)
	}
	return resp
}

func totalsFromStatement(t statement.Totals) *TotalsResponse {
	return &TotalsResponse{
		VentasNetas:            t.VentasNetas,
		UtilidadBruta:          t.UtilidadBruta,
		TotalGastosOperativos:  t.TotalGastosOperativos,
		UtilidadEnVentas:       t.UtilidadEnVentas,
		UtilidadOperativa:      t.UtilidadOperativa,
		UtilidadBrutaEjercicio: t.UtilidadBrutaEjercicio,
		RemanenteCompensacion:  t.RemanenteCompensacion,
		BaseImponible:          t.BaseImponible,
		IUE:                    t.IUE,
		UtilidadNeta:           t.UtilidadNeta,
		ReservaLegal:           t.ReservaLegal,
		UtilidadLiquida:        t.UtilidadLiquida,
	}
}
