package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the semantic class of a chart account.
type AccountType string

const (
	TypeAsset      AccountType = "asset"
	TypeLiability  AccountType = "liability"
	TypeEquity     AccountType = "equity"
	TypeIncome     AccountType = "income"
	TypeExpense    AccountType = "expense"
	TypeCost       AccountType = "cost"
	TypeRegulating AccountType = "regulating"
	TypeMemo       AccountType = "memo"
)

// Account is one row of the chart of accounts. Level and ParentCode may be
// zero-valued when the chart was imported flat; the chart analyzer derives them.
type Account struct {
	Code       string
	Name       string
	Type       AccountType
	Level      int
	ParentCode string
	CompanyID  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsResultType reports whether the account participates in the income statement.
func (t AccountType) IsResultType() bool {
	return t == TypeIncome || t == TypeExpense || t == TypeCost
}

// IsBalanceSheetType reports whether the account belongs to the balance-sheet
// equation. Regulating (contra) accounts count: they close with the balance sheet.
func (t AccountType) IsBalanceSheetType() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRegulating:
		return true
	}
	return false
}

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeIncome,
		TypeExpense, TypeCost, TypeRegulating, TypeMemo:
		return true
	}
	return false
}

// AccountBalance accumulates the period movements of one account.
type AccountBalance struct {
	AccountCode string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Net returns the signed balance, debit-positive.
func (b *AccountBalance) Net() decimal.Decimal {
	return b.TotalDebit.Sub(b.TotalCredit)
}

// IsZero reports whether the account had no net movement.
func (b *AccountBalance) IsZero() bool {
	return b.Net().IsZero()
}
