// Package statement buckets result accounts and runs the income-statement
// waterfall from gross revenue down to distributable net income.
package statement

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/domain"
)

// Line is one account with its signed, adjusted period balance
// (debit-positive convention).
type Line struct {
	Account *domain.Account
	Balance decimal.Decimal
}

// Buckets holds the classified income-statement lines. Bucket membership is
// decided by the fixed matchers below, in priority order, first match wins.
type Buckets struct {
	Accumulated   []Line // resultados acumulados, kept aside for loss compensation
	NonTaxable    []Line // exempt income, added back after tax
	ContraRevenue []Line
	Revenue       []Line
	Cost          []Line
	OtherIncome   []Line // sign-classified: credit balance
	OtherExpense  []Line // sign-classified: debit balance
	Selling       []Line
	Financial     []Line
	Admin         []Line
}

var (
	reAccumulated  = regexp.MustCompile(`(?i)resultados (acumulados|de gestiones anteriores)|utilidades? (acumuladas?|no distribuidas)|perdidas? acumuladas?`)
	reNonTaxable   = regexp.MustCompile(`(?i)dividendos? (percibidos|ganados)|ingresos? (exentos?|no gravados?)`)
	reContraRev    = regexp.MustCompile(`(?i)descuentos? (en|sobre) ventas?|devoluciones? (en|sobre) ventas?|rebajas? (en|sobre) ventas?`)
	reRevenue      = regexp.MustCompile(`(?i)^ventas?( |$)|ventas? de|ingresos? por (ventas?|servicios?)|servicios? (prestados|vendidos)`)
	reCost         = regexp.MustCompile(`(?i)costo de (ventas?|mercader|servicios?|productos?)`)
	reOtherResult  = regexp.MustCompile(`(?i)ajuste por inflacion|aitb|diferencias? de cambio|mantenimiento de valor|otros (ingresos|egresos)|ingresos? (extraordinarios|varios)|resultado por (tenencia|exposicion)`)
	reSellingExp   = regexp.MustCompile(`(?i)gastos? de (venta|comercializacion|distribucion)|publicidad|propaganda|marketing|comisiones sobre ventas`)
	reFinancialExp = regexp.MustCompile(`(?i)gastos? (financieros?|bancarios?)|intereses? (pagados|perdidos)|comisiones bancarias`)
)

// Bucket distributes accounts into waterfall buckets. Balance-sheet-typed
// accounts are excluded except accumulated-results equity accounts, which are
// kept aside rather than closed. Result-typed accounts matching no bucket
// fall into admin expense only if expense-typed; otherwise they are ignored.
func Bucket(lines []Line) Buckets {
	var b Buckets
	for _, l := range lines {
		name := l.Account.Name
		switch {
		case reAccumulated.MatchString(name):
			b.Accumulated = append(b.Accumulated, l)
		case reNonTaxable.MatchString(name):
			b.NonTaxable = append(b.NonTaxable, l)
		case !l.Account.Type.IsResultType():
			// balance-sheet, regulating and memo accounts stay out
		case reContraRev.MatchString(name):
			b.ContraRevenue = append(b.ContraRevenue, l)
		case reRevenue.MatchString(name) || (l.Account.Type == domain.TypeIncome && !reOtherResult.MatchString(name)):
			b.Revenue = append(b.Revenue, l)
		case reCost.MatchString(name) || l.Account.Type == domain.TypeCost:
			b.Cost = append(b.Cost, l)
		case reOtherResult.MatchString(name):
			// Netted by balance sign: inflation and exchange adjustments can
			// legitimately swing either direction period to period.
			if l.Balance.IsNegative() {
				b.OtherIncome = append(b.OtherIncome, l)
			} else {
				b.OtherExpense = append(b.OtherExpense, l)
			}
		case l.Account.Type == domain.TypeExpense && reSellingExp.MatchString(name):
			b.Selling = append(b.Selling, l)
		case l.Account.Type == domain.TypeExpense && reFinancialExp.MatchString(name):
			b.Financial = append(b.Financial, l)
		case l.Account.Type == domain.TypeExpense:
			b.Admin = append(b.Admin, l)
		}
	}
	return b
}

// sum returns the absolute total of a bucket.
func sum(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Balance.Abs())
	}
	return total
}

// accumulatedDebit returns the net debit balance held in accumulated-results
// accounts (prior losses available for compensation), floored at zero.
func accumulatedDebit(lines []Line) decimal.Decimal {
	net := decimal.Zero
	for _, l := range lines {
		net = net.Add(l.Balance)
	}
	if net.IsNegative() {
		return decimal.Zero
	}
	return net
}
