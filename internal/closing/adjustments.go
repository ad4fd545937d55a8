package closing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/domain"
)

// monthsPerYear converts annual depreciation rates to the monthly charge.
var monthsPerYear = decimal.NewFromInt(12)

// generateAdjustments appends the inflation revaluation and depreciation
// transactions to res and folds their entries into the effective balances.
func (g *generator) generateAdjustments(res *Result) {
	if aitb := g.inflationRevaluation(res); aitb != nil {
		res.Transactions = append(res.Transactions, aitb)
		g.applyAll(aitb)
	}
	if dep := g.depreciation(res); dep != nil {
		res.Transactions = append(res.Transactions, dep)
		g.applyAll(dep)
	}
}

// inflationRevaluation revalues every non-monetary account by the period's
// index movement. Each account gets a mirrored pair against the configured
// inflation-adjustment account; immaterial amounts are dropped.
func (g *generator) inflationRevaluation(res *Result) *domain.ProposedTransaction {
	coef := g.in.Period.FinalRate.Div(g.in.Period.InitialRate).Sub(decimal.NewFromInt(1))
	if coef.IsZero() {
		return nil
	}

	tx := &domain.ProposedTransaction{
		Gloss: fmt.Sprintf("Ajuste por inflacion y tenencia de bienes (indice %s a %s)",
			g.in.Period.InitialRate.String(), g.in.Period.FinalRate.String()),
		Kind: domain.KindAdjustment,
		Date: g.in.Period.EndDate,
	}

	for _, a := range g.in.Accounts {
		bal, ok := g.in.Balances[a.Code]
		if !ok {
			continue
		}
		if g.class[a.Code].Type != classify.NonMonetary {
			continue
		}
		adj := domain.Round(bal.Net().Mul(coef))
		if !domain.IsMaterial(adj) {
			continue
		}

		g.aitb[a.Code] = adj
		res.Summary.AdjustedAccounts++
		res.Summary.TotalAITB = res.Summary.TotalAITB.Add(adj.Abs())

		mirror := domain.Entry{
			AccountCode: g.in.Keys.InflationAdjustment,
			AccountName: g.accountName(g.in.Keys.InflationAdjustment),
		}
		own := domain.Entry{AccountCode: a.Code, AccountName: a.Name}
		if adj.IsPositive() {
			own.Debit = adj
			mirror.Credit = adj
		} else {
			own.Credit = adj.Neg()
			mirror.Debit = adj.Neg()
		}
		tx.Entries = append(tx.Entries, own, mirror)
	}

	if len(tx.Entries) == 0 {
		return nil
	}
	return tx
}

// depreciation charges one month of flat-rate depreciation per depreciable
// asset, on the AITB-adjusted base. The revaluation compounds into the base
// on purpose: depreciation follows the revalued carrying amount, not a
// schedule net of prior charges.
func (g *generator) depreciation(res *Result) *domain.ProposedTransaction {
	tx := &domain.ProposedTransaction{
		Gloss: "Depreciacion de activos fijos del periodo",
		Kind:  domain.KindAdjustment,
		Date:  g.in.Period.EndDate,
	}

	for _, a := range g.in.Accounts {
		bal, ok := g.in.Balances[a.Code]
		if !ok {
			continue
		}
		if !g.class[a.Code].HasTag("Depreciable") {
			continue
		}

		base := bal.Net().Add(g.aitb[a.Code])
		class := g.in.Rules.ClassFor(a.Name)
		monthly := domain.Round(base.Mul(class.AnnualRate).Div(monthsPerYear))
		if !domain.IsMaterial(monthly) || monthly.IsNegative() {
			continue
		}

		res.Summary.DepreciatedAssets++
		res.Summary.TotalDepreciation = res.Summary.TotalDepreciation.Add(monthly)

		tx.Entries = append(tx.Entries,
			domain.Entry{
				AccountCode: g.in.Keys.DepreciationExpense,
				AccountName: g.accountName(g.in.Keys.DepreciationExpense),
				Debit:       monthly,
			},
			domain.Entry{
				AccountCode: g.in.Keys.AccumulatedDepreciation,
				AccountName: g.accountName(g.in.Keys.AccumulatedDepreciation),
				Credit:      monthly,
			},
		)
	}

	if len(tx.Entries) == 0 {
		return nil
	}
	return tx
}
