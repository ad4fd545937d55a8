package domain

import "github.com/shopspring/decimal"

// BalanceTolerance is the maximum debit/credit difference a transaction may
// carry and still count as balanced (one cent).
var BalanceTolerance = decimal.New(1, -2)

// Materiality is the threshold below which adjustment entries are dropped.
var Materiality = decimal.New(1, -2)

// Round applies banker's rounding at two decimals. Every monetary figure the
// engine emits goes through this, so repeated runs over identical input are
// byte-for-byte reproducible.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// IsMaterial reports whether an amount clears the materiality threshold.
func IsMaterial(d decimal.Decimal) bool {
	return d.Abs().GreaterThanOrEqual(Materiality)
}
