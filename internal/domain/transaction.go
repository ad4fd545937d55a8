package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes monetary adjustments from closing entries.
type TransactionKind string

const (
	KindAdjustment TransactionKind = "adjustment"
	KindClosing    TransactionKind = "closing"
)

// Entry is one leg of a proposed transaction. By convention exactly one of
// Debit/Credit is non-zero, though zero-valued placeholders are legal.
// AccountCode is empty when a configured account was absent from the chart;
// downstream decides whether that makes the whole proposal unusable.
type Entry struct {
	AccountCode string
	AccountName string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// ProposedTransaction is a balanced set of entries produced by the closing
// engine. It is never persisted here; the caller owns storage.
type ProposedTransaction struct {
	ID      string
	Gloss   string
	Kind    TransactionKind
	Date    time.Time
	Entries []Entry
}

// TotalDebit sums the debit legs.
func (t *ProposedTransaction) TotalDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Debit)
	}
	return sum
}

// TotalCredit sums the credit legs.
func (t *ProposedTransaction) TotalCredit() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range t.Entries {
		sum = sum.Add(e.Credit)
	}
	return sum
}

// Validate enforces the double-entry invariant within BalanceTolerance.
func (t *ProposedTransaction) Validate() error {
	diff := t.TotalDebit().Sub(t.TotalCredit()).Abs()
	if diff.GreaterThan(BalanceTolerance) {
		return ErrUnbalancedTransaction
	}
	return nil
}
