package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAccountType_Classification(t *testing.T) {
	tests := []struct {
		typ          AccountType
		result       bool
		balanceSheet bool
	}{
		{TypeAsset, false, true},
		{TypeLiability, false, true},
		{TypeEquity, false, true},
		{TypeRegulating, false, true},
		{TypeIncome, true, false},
		{TypeExpense, true, false},
		{TypeCost, true, false},
		{TypeMemo, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.IsResultType(); got != tt.result {
				t.Errorf("IsResultType() = %v, want %v", got, tt.result)
			}
			if got := tt.typ.IsBalanceSheetType(); got != tt.balanceSheet {
				t.Errorf("IsBalanceSheetType() = %v, want %v", got, tt.balanceSheet)
			}
			if !tt.typ.Valid() {
				t.Errorf("Valid() = false for known type %s", tt.typ)
			}
		})
	}

	if AccountType("bogus").Valid() {
		t.Error("Valid() = true for unknown type")
	}
}

func TestAccountBalance_Net(t *testing.T) {
	tests := []struct {
		name   string
		debit  string
		credit string
		want   string
		isZero bool
	}{
		{name: "debit balance", debit: "500", credit: "200", want: "300"},
		{name: "credit balance", debit: "100", credit: "400", want: "-300"},
		{name: "no movement", debit: "0", credit: "0", want: "0", isZero: true},
		{name: "equal movements", debit: "250", credit: "250", want: "0", isZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &AccountBalance{
				TotalDebit:  decimal.RequireFromString(tt.debit),
				TotalCredit: decimal.RequireFromString(tt.credit),
			}

			if !b.Net().Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Net() = %s, want %s", b.Net(), tt.want)
			}
			if b.IsZero() != tt.isZero {
				t.Errorf("IsZero() = %v, want %v", b.IsZero(), tt.isZero)
			}
		})
	}
}
