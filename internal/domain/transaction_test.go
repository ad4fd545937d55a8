package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestProposedTransaction_Totals(t *testing.T) {
	tx := &ProposedTransaction{
		Entries: []Entry{
			{AccountCode: "3201", Debit: decimal.NewFromInt(6000)},
			{AccountCode: "5101", Credit: decimal.NewFromInt(2000)},
			{AccountCode: "6101", Credit: decimal.NewFromInt(4000)},
		},
	}

	if !tx.TotalDebit().Equal(decimal.NewFromInt(6000)) {
		t.Errorf("TotalDebit() = %s, want 6000", tx.TotalDebit())
	}
	if !tx.TotalCredit().Equal(decimal.NewFromInt(6000)) {
		t.Errorf("TotalCredit() = %s, want 6000", tx.TotalCredit())
	}
}

func TestProposedTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{
			name: "balanced",
			entries: []Entry{
				{Debit: decimal.NewFromInt(100)},
				{Credit: decimal.NewFromInt(100)},
			},
		},
		{
			name: "within tolerance",
			entries: []Entry{
				{Debit: decimal.RequireFromString("100.01")},
				{Credit: decimal.NewFromInt(100)},
			},
		},
		{
			name: "beyond tolerance",
			entries: []Entry{
				{Debit: decimal.RequireFromString("100.02")},
				{Credit: decimal.NewFromInt(100)},
			},
			wantErr: true,
		},
		{
			name:    "empty set balances",
			entries: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &ProposedTransaction{Entries: tt.entries}

			err := tx.Validate()

			if tt.wantErr && !errors.Is(err, ErrUnbalancedTransaction) {
				t.Errorf("Validate() = %v, want ErrUnbalancedTransaction", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
