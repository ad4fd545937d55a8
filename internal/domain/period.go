package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiscalPeriod bounds one closing run. InitialRate/FinalRate are the
// period-open and period-close index values used for inflation revaluation.
type FiscalPeriod struct {
	ID          string
	CompanyID   string
	Name        string
	StartDate   time.Time
	EndDate     time.Time
	Closed      bool
	InitialRate decimal.Decimal
	FinalRate   decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the period is usable for a closing run.
func (p *FiscalPeriod) Validate() error {
	if p.EndDate.Before(p.StartDate) {
		return ErrInvalidPeriodDates
	}
	if p.InitialRate.LessThanOrEqual(decimal.Zero) || p.FinalRate.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidExchangeRate
	}
	return nil
}
