package closing

import (
	"fmt"

	"github.com/quipuapp/quipu/internal/domain"
)

// generateClosing assembles the five-phase closing entry sequence. Each phase
// is an independent balanced transaction; phases that produce no entries are
// skipped.
func (g *generator) generateClosing(res *Result) error {
	phases := []func(*Result) (*domain.ProposedTransaction, error){
		g.closeDebitResults,
		g.closeCreditResults,
		g.distributeResults,
		g.closeBalanceSheet,
		g.closeMemoAccounts,
	}
	for _, phase := range phases {
		tx, err := phase(res)
		if err != nil {
			return err
		}
		if tx == nil || len(tx.Entries) == 0 {
			continue
		}
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("closing transaction %q: %w", tx.Gloss, err)
		}
		res.Transactions = append(res.Transactions, tx)
		g.applyAll(tx)
	}
	return nil
}

// closeDebitResults sweeps expense and cost accounts (debit balances) into
// the income summary.
func (g *generator) closeDebitResults(*Result) (*domain.ProposedTransaction, error) {
	tx := g.newClosingTx("Cierre de cuentas de resultado con saldo deudor")
	total := domain.Entry{
		AccountCode: g.in.Keys.IncomeSummary,
		AccountName: g.accountName(g.in.Keys.IncomeSummary),
	}

	for _, a := range g.resultAccounts() {
		bal := g.balance(a.Code)
		if !bal.IsPositive() {
			continue
		}
		tx.Entries = append(tx.Entries, domain.Entry{
			AccountCode: a.Code,
			AccountName: a.Name,
			Credit:      bal,
		})
		total.Debit = total.Debit.Add(bal)
	}

	if len(tx.Entries) == 0 {
		return nil, nil
	}
	tx.Entries = append([]domain.Entry{total}, tx.Entries...)
	return tx, nil
}

// closeCreditResults sweeps revenue accounts (credit balances) into the
// income summary.
func (g *generator) closeCreditResults(*Result) (*domain.ProposedTransaction, error) {
	tx := g.newClosingTx("Cierre de cuentas de resultado con saldo acreedor")
	total := domain.Entry{
		AccountCode: g.in.Keys.IncomeSummary,
		AccountName: g.accountName(g.in.Keys.IncomeSummary),
	}

	for _, a := range g.resultAccounts() {
		bal := g.balance(a.Code)
		if !bal.IsNegative() {
			continue
		}
		tx.Entries = append(tx.Entries, domain.Entry{
			AccountCode: a.Code,
			AccountName: a.Name,
			Debit:       bal.Neg(),
		})
		total.Credit = total.Credit.Add(bal.Neg())
	}

	if len(tx.Entries) == 0 {
		return nil, nil
	}
	tx.Entries = append(tx.Entries, total)
	return tx, nil
}

// distributeResults posts loss compensation, tax, legal reserve and the net
// income allocation against the income summary, then zeroes whatever residual
// the summary still carries into retained earnings. Allocating the residual
// rather than the computed figure keeps the transaction balanced even when
// some result account escaped every waterfall bucket.
func (g *generator) distributeResults(res *Result) (*domain.ProposedTransaction, error) {
	tx := g.newClosingTx("Distribucion de resultados de la gestion")
	t := res.Totals

	if t.RemanenteCompensacion.IsPositive() {
		target := g.in.Keys.RetainedEarnings
		if len(g.buckets.Accumulated) > 0 {
			target = g.buckets.Accumulated[0].Account.Code
		}
		tx.Entries = append(tx.Entries,
			domain.Entry{
				AccountCode: g.in.Keys.IncomeSummary,
				AccountName: g.accountName(g.in.Keys.IncomeSummary),
				Debit:       t.RemanenteCompensacion,
			},
			domain.Entry{
				AccountCode: target,
				AccountName: g.accountName(target),
				Credit:      t.RemanenteCompensacion,
			},
		)
	}

	if t.IUE.IsPositive() {
		tx.Entries = append(tx.Entries,
			domain.Entry{
				AccountCode: g.in.Keys.IncomeSummary,
				AccountName: g.accountName(g.in.Keys.IncomeSummary),
				Debit:       t.IUE,
			},
			domain.Entry{
				AccountCode: g.in.Keys.TaxPayable,
				AccountName: g.accountName(g.in.Keys.TaxPayable),
				Credit:      t.IUE,
			},
		)
	}

	if t.ReservaLegal.IsPositive() {
		tx.Entries = append(tx.Entries,
			domain.Entry{
				AccountCode: g.in.Keys.IncomeSummary,
				AccountName: g.accountName(g.in.Keys.IncomeSummary),
				Debit:       t.ReservaLegal,
			},
			domain.Entry{
				AccountCode: g.in.Keys.LegalReserve,
				AccountName: g.accountName(g.in.Keys.LegalReserve),
				Credit:      t.ReservaLegal,
			},
		)
	}

	// Residual net income (or loss) into retained earnings.
	residual := g.balance(g.in.Keys.IncomeSummary)
	for _, e := range tx.Entries {
		if e.AccountCode != g.in.Keys.IncomeSummary {
			continue
		}
		residual = residual.Add(e.Debit).Sub(e.Credit)
	}
	retained := domain.Entry{
		AccountCode: g.in.Keys.RetainedEarnings,
		AccountName: g.accountName(g.in.Keys.RetainedEarnings),
	}
	summary := domain.Entry{
		AccountCode: g.in.Keys.IncomeSummary,
		AccountName: g.accountName(g.in.Keys.IncomeSummary),
	}
	switch {
	case residual.IsNegative():
		summary.Debit = residual.Neg()
		retained.Credit = residual.Neg()
		tx.Entries = append(tx.Entries, summary, retained)
	case residual.IsPositive():
		summary.Credit = residual
		retained.Debit = residual
		tx.Entries = append(tx.Entries, retained, summary)
	}

	if len(tx.Entries) == 0 {
		return nil, nil
	}
	return tx, nil
}

// closeBalanceSheet zeroes every remaining balance-sheet and regulating
// account by balance sign. Sign-based closing means contra accounts with
// naturally inverted balances need no special-casing.
func (g *generator) closeBalanceSheet(*Result) (*domain.ProposedTransaction, error) {
	return g.closeBySign("Cierre de cuentas de balance", func(t domain.AccountType) bool {
		return t.IsBalanceSheetType()
	})
}

// closeMemoAccounts handles off-balance order accounts separately: they pair
// among themselves and never touch the balance-sheet equation.
func (g *generator) closeMemoAccounts(*Result) (*domain.ProposedTransaction, error) {
	return g.closeBySign("Cierre de cuentas de orden", func(t domain.AccountType) bool {
		return t == domain.TypeMemo
	})
}

func (g *generator) closeBySign(gloss string, match func(domain.AccountType) bool) (*domain.ProposedTransaction, error) {
	tx := g.newClosingTx(gloss)
	for _, a := range g.in.Accounts {
		if !match(a.Type) {
			continue
		}
		bal := g.balance(a.Code)
		if bal.IsZero() {
			continue
		}
		e := domain.Entry{AccountCode: a.Code, AccountName: a.Name}
		if bal.IsPositive() {
			e.Credit = bal
		} else {
			e.Debit = bal.Neg()
		}
		tx.Entries = append(tx.Entries, e)
	}
	if len(tx.Entries) == 0 {
		return nil, nil
	}
	return tx, nil
}

func (g *generator) resultAccounts() []*domain.Account {
	out := make([]*domain.Account, 0, len(g.in.Accounts))
	for _, a := range g.in.Accounts {
		if a.Type.IsResultType() {
			out = append(out, a)
		}
	}
	return out
}

func (g *generator) newClosingTx(gloss string) *domain.ProposedTransaction {
	return &domain.ProposedTransaction{
		Gloss: gloss,
		Kind:  domain.KindClosing,
		Date:  g.in.Period.EndDate,
	}
}
