package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Period errors
	ErrPeriodNotFound      = errors.New("fiscal period not found")
	ErrPeriodAlreadyClosed = errors.New("fiscal period is already closed")
	ErrInvalidPeriodDates  = errors.New("period end date precedes start date")
	ErrInvalidExchangeRate = errors.New("exchange rates must be positive")

	// Transaction errors
	ErrUnbalancedTransaction = errors.New("transaction debits and credits do not balance")
	ErrTransactionNotFound   = errors.New("transaction not found")
)

// MissingKeyAccountsError reports which named closing accounts are absent from
// the chart. A fabricated substitute would corrupt the balance invariant, so
// the generator refuses to emit a closing set instead.
type MissingKeyAccountsError struct {
	Missing []string
}

func (e *MissingKeyAccountsError) Error() string {
	return fmt.Sprintf("closing requires key accounts missing from the chart: %s",
		strings.Join(e.Missing, ", "))
}
