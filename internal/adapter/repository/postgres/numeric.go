package postgres

import "github.com/shopspring/decimal"

// parseNumeric converts a text-cast postgres numeric into a decimal.
func parseNumeric(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
