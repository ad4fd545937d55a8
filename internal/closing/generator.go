// Package closing computes the period-end monetary adjustments (inflation
// revaluation and depreciation) and assembles the balanced closing entry set.
// It is a pure batch computation: one immutable snapshot in, a list of
// proposed transactions out, never any I/O.
package closing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/statement"
)

// Status distinguishes an empty-but-successful run from a failure.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNothingToAdjust Status = "nothing_to_adjust"
)

// KeyAccounts names the configured accounts the generator posts against,
// by chart code. The first four are mandatory for a closing run; the rest
// degrade to entries with an empty account reference when absent.
type KeyAccounts struct {
	IncomeSummary           string
	RetainedEarnings        string
	TaxPayable              string
	LegalReserve            string
	InflationAdjustment     string
	DepreciationExpense     string
	AccumulatedDepreciation string
}

// Options are the per-run policy knobs.
type Options struct {
	EntityKind string // legal form, matched against the reserve policy's applies_to
	// ReserveOverride forces the legal reserve on or off regardless of the
	// entity kind. Nil means follow the rule set policy.
	ReserveOverride *bool
	IUERate         decimal.Decimal
}

// Input is one complete company/period snapshot.
type Input struct {
	Accounts []*domain.Account
	Balances map[string]*domain.AccountBalance
	Period   *domain.FiscalPeriod
	Rules    classify.RuleSet
	Keys     KeyAccounts
	Options  Options
}

// Summary aggregates what a run produced.
type Summary struct {
	AccountsClassified int
	AdjustedAccounts   int
	DepreciatedAssets  int
	TotalAITB          decimal.Decimal
	TotalDepreciation  decimal.Decimal
	TransactionCount   int
	PeriodStart        time.Time
	PeriodEnd          time.Time
}

// Result is the complete output of a run.
type Result struct {
	Transactions []*domain.ProposedTransaction
	Totals       statement.Totals
	Summary      Summary
	Status       Status
}

// generator carries the run state: the inferred profile, per-account
// classifications and effective balances that accumulate the entries already
// generated during the run.
type generator struct {
	in        Input
	profile   chart.Profile
	accounts  map[string]*domain.Account
	class     map[string]classify.Result
	effective map[string]decimal.Decimal
	aitb      map[string]decimal.Decimal
	buckets   statement.Buckets
}

func newGenerator(in Input) *generator {
	g := &generator{
		in:        in,
		accounts:  make(map[string]*domain.Account, len(in.Accounts)),
		class:     make(map[string]classify.Result, len(in.Accounts)),
		effective: make(map[string]decimal.Decimal, len(in.Balances)),
		aitb:      make(map[string]decimal.Decimal),
	}

	codes := make([]string, 0, len(in.Accounts))
	for _, a := range in.Accounts {
		g.accounts[a.Code] = a
		codes = append(codes, a.Code)
	}
	g.profile = chart.Analyze(codes)

	for code, bal := range in.Balances {
		g.effective[code] = bal.Net()
	}
	for _, a := range in.Accounts {
		if _, ok := in.Balances[a.Code]; ok {
			g.class[a.Code] = classify.Classify(a.Code, a.Name, in.Rules, g.profile, g.accounts)
		}
	}
	return g
}

// balance returns the effective signed balance of an account, debit-positive,
// including entries generated earlier in this run.
func (g *generator) balance(code string) decimal.Decimal {
	return g.effective[code]
}

// apply folds a generated entry into the effective balances.
func (g *generator) apply(e domain.Entry) {
	if e.AccountCode == "" {
		return
	}
	g.effective[e.AccountCode] = g.effective[e.AccountCode].Add(e.Debit).Sub(e.Credit)
}

func (g *generator) applyAll(t *domain.ProposedTransaction) {
	for _, e := range t.Entries {
		g.apply(e)
	}
}

func (g *generator) accountName(code string) string {
	if a, ok := g.accounts[code]; ok {
		return a.Name
	}
	return ""
}

// Adjustments computes the inflation revaluation and depreciation proposals
// without closing the period.
func Adjustments(in Input) (*Result, error) {
	if err := in.Period.Validate(); err != nil {
		return nil, err
	}
	g := newGenerator(in)

	res := &Result{Status: StatusOK}
	g.generateAdjustments(res)
	g.summarize(res)
	if len(res.Transactions) == 0 {
		res.Status = StatusNothingToAdjust
	}
	return res, nil
}

// Close runs the full pipeline: adjustments, waterfall, and the five-phase
// closing entry set. Missing key accounts abort the run before any entry is
// produced.
func Close(in Input) (*Result, error) {
	if err := in.Period.Validate(); err != nil {
		return nil, err
	}
	g := newGenerator(in)

	if err := g.checkKeyAccounts(); err != nil {
		return nil, err
	}

	if len(in.Balances) == 0 {
		return &Result{Status: StatusNothingToAdjust}, nil
	}

	res := &Result{Status: StatusOK}
	g.generateAdjustments(res)

	g.buckets = g.bucketResultAccounts()
	res.Totals = statement.Compute(g.buckets, statement.Params{
		IUERate:        in.Options.IUERate,
		ReservePercent: in.Rules.Reserve.Percent,
		ReserveApplies: g.reserveApplies(),
	})

	if err := g.generateClosing(res); err != nil {
		return nil, err
	}

	g.summarize(res)
	return res, nil
}

// checkKeyAccounts verifies the four mandatory closing accounts exist in the
// chart. Guessing a substitute would unbalance the set by construction.
func (g *generator) checkKeyAccounts() error {
	named := []struct{ role, code string }{
		{"resumen de resultados", g.in.Keys.IncomeSummary},
		{"resultados acumulados", g.in.Keys.RetainedEarnings},
		{"impuesto por pagar", g.in.Keys.TaxPayable},
		{"reserva legal", g.in.Keys.LegalReserve},
	}
	var missing []string
	for _, k := range named {
		if _, ok := g.accounts[k.code]; k.code == "" || !ok {
			missing = append(missing, k.role)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingKeyAccountsError{Missing: missing}
	}
	return nil
}

func (g *generator) reserveApplies() bool {
	if g.in.Options.ReserveOverride != nil {
		return *g.in.Options.ReserveOverride
	}
	for _, kind := range g.in.Rules.Reserve.AppliesTo {
		if kind == g.in.Options.EntityKind {
			return true
		}
	}
	return false
}

// bucketResultAccounts feeds the waterfall with the adjusted signed balances.
func (g *generator) bucketResultAccounts() statement.Buckets {
	lines := make([]statement.Line, 0, len(g.in.Balances))
	for _, a := range g.in.Accounts {
		if _, ok := g.in.Balances[a.Code]; !ok {
			continue
		}
		if g.class[a.Code].Type == classify.Unknown {
			continue
		}
		bal := g.balance(a.Code)
		if bal.IsZero() {
			continue
		}
		lines = append(lines, statement.Line{Account: a, Balance: bal})
	}
	return statement.Bucket(lines)
}

func (g *generator) summarize(res *Result) {
	res.Summary.AccountsClassified = len(g.class)
	res.Summary.TransactionCount = len(res.Transactions)
	res.Summary.PeriodStart = g.in.Period.StartDate
	res.Summary.PeriodEnd = g.in.Period.EndDate
}
