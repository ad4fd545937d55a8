package usecase

import (
	"context"

	"github.com/quipuapp/quipu/internal/domain"
)

// PeriodUseCase serves fiscal period reads.
type PeriodUseCase struct {
	periodRepo PeriodRepository
}

// NewPeriodUseCase creates a new PeriodUseCase.
func NewPeriodUseCase(periodRepo PeriodRepository) *PeriodUseCase {
	return &PeriodUseCase{periodRepo: periodRepo}
}

// GetPeriod retrieves a fiscal period by ID.
func (uc *PeriodUseCase) GetPeriod(ctx context.Context, id string) (*domain.FiscalPeriod, error) {
	return uc.periodRepo.GetByID(ctx, id)
}

// ListPeriodsInput holds list parameters.
type ListPeriodsInput struct {
	CompanyID string
	Limit     int
	Offset    int
}

// ListPeriods lists a company's fiscal periods.
func (uc *PeriodUseCase) ListPeriods(ctx context.Context, input ListPeriodsInput) ([]*domain.FiscalPeriod, error) {
	return uc.periodRepo.List(ctx, input.CompanyID, input.Limit, input.Offset)
}
