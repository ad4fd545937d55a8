package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/statement"
)

func TestAccountFromDomain(t *testing.T) {
	now := time.Now()
	account := &domain.Account{
		Code:       "1101.01",
		Name:       "Caja Moneda Nacional",
		Type:       domain.TypeAsset,
		Level:      3,
		ParentCode: "1101",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	resp := AccountFromDomain(account)
	if resp.Code != account.Code || resp.Type != "asset" || resp.ParentCode != "1101" {
		t.Fatalf("unexpected account response: %+v", resp)
	}

	list := AccountsFromDomain([]*domain.Account{account})
	if len(list) != 1 || list[0].Code != account.Code {
		t.Fatalf("AccountsFromDomain returned %+v", list)
	}
}

func TestBalanceFromDomain(t *testing.T) {
	balance := &domain.AccountBalance{
		AccountCode: "1101",
		TotalDebit:  decimal.RequireFromString("800"),
		TotalCredit: decimal.RequireFromString("300"),
	}

	resp := BalanceFromDomain(balance)
	if resp.AccountCode != "1101" || !resp.Balance.Equal(decimal.RequireFromString("500")) {
		t.Fatalf("unexpected balance response: %+v", resp)
	}
}

func TestPeriodFromDomain(t *testing.T) {
	period := &domain.FiscalPeriod{
		ID:          "2024",
		CompanyID:   "co-1",
		Name:        "Gestion 2024",
		Closed:      true,
		InitialRate: decimal.RequireFromString("2.35"),
		FinalRate:   decimal.RequireFromString("2.42"),
	}

	resp := PeriodFromDomain(period)
	if resp.ID != "2024" || !resp.Closed || !resp.FinalRate.Equal(period.FinalRate) {
		t.Fatalf("unexpected period response: %+v", resp)
	}

	list := PeriodsFromDomain([]*domain.FiscalPeriod{period})
	if len(list) != 1 || list[0].ID != period.ID {
		t.Fatalf("PeriodsFromDomain returned %+v", list)
	}
}

func TestProfileFromChart(t *testing.T) {
	resp := ProfileFromChart(chart.DefaultProfile())
	if resp.Separator != "." || !resp.HasSeparator || resp.MaxLevel != 4 {
		t.Fatalf("unexpected profile response: %+v", resp)
	}
}

func TestClassificationFromResult(t *testing.T) {
	resp := ClassificationFromResult(classify.Result{
		Type:           classify.NonMonetary,
		Tags:           []string{"Asset", "Depreciable"},
		Source:         "edificio|inmueble",
		MatchedPattern: "edificio",
		Confidence:     0.9,
	})

	if resp.Type != string(classify.NonMonetary) || len(resp.Tags) != 2 || resp.Confidence != 0.9 {
		t.Fatalf("unexpected classification response: %+v", resp)
	}
}

func TestClosingResultFromDomain(t *testing.T) {
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	result := &closing.Result{
		Status: closing.StatusOK,
		Transactions: []*domain.ProposedTransaction{
			{
				ID:    "tx-1",
				Gloss: "Ajuste por inflacion",
				Kind:  domain.KindAdjustment,
				Date:  end,
				Entries: []domain.Entry{
					{AccountCode: "1201", AccountName: "Terrenos", Debit: decimal.RequireFromString("14.49")},
					{AccountCode: "5301", AccountName: "AITB", Credit: decimal.RequireFromString("14.49")},
				},
			},
		},
		Totals: statement.Totals{
			VentasNetas: decimal.RequireFromString("10000"),
			IUE:         decimal.RequireFromString("1000"),
		},
		Summary: closing.Summary{
			AdjustedAccounts: 1,
			TotalAITB:        decimal.RequireFromString("14.49"),
			TransactionCount: 1,
			PeriodEnd:        end,
		},
	}

	resp := ClosingResultFromDomain(result)
	if resp.Status != "ok" || len(resp.Transactions) != 1 {
		t.Fatalf("unexpected closing response: %+v", resp)
	}
	if len(resp.Transactions[0].Entries) != 2 {
		t.Fatalf("expected both legs to survive conversion, got %+v", resp.Transactions[0])
	}
	if resp.Totals == nil || !resp.Totals.IUE.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expected totals on an ok result, got %+v", resp.Totals)
	}
	if resp.Summary.AdjustedAccounts != 1 || !resp.Summary.TotalAITB.Equal(decimal.RequireFromString("14.49")) {
		t.Fatalf("unexpected summary: %+v", resp.Summary)
	}
}

func TestClosingResultFromDomain_OmitsTotalsWhenNothingToAdjust(t *testing.T) {
	resp := ClosingResultFromDomain(&closing.Result{Status: closing.StatusNothingToAdjust})
	if resp.Status != "nothing_to_adjust" || resp.Totals != nil {
		t.Fatalf("expected no totals, got %+v", resp)
	}
}
