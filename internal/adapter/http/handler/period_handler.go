package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/domain"
	"github.com/quipuapp/quipu/internal/usecase"
)

// PeriodService defines the behavior needed by PeriodHandler.
type PeriodService interface {
	GetPeriod(ctx context.Context, id string) (*domain.FiscalPeriod, error)
	ListPeriods(ctx context.Context, input usecase.ListPeriodsInput) ([]*domain.FiscalPeriod, error)
}

// PeriodHandler handles fiscal-period HTTP requests.
type PeriodHandler struct {
	periodUC PeriodService
}

// NewPeriodHandler creates a new PeriodHandler.
func NewPeriodHandler(periodUC PeriodService) *PeriodHandler {
	return &PeriodHandler{periodUC: periodUC}
}

// List lists fiscal periods.
func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := usecase.ClampPagination(
		parseIntQuery(r, "limit", usecase.DefaultPageSize),
		parseIntQuery(r, "offset", 0),
	)

	periods, err := h.periodUC.ListPeriods(r.Context(), usecase.ListPeriodsInput{
		CompanyID: r.URL.Query().Get("company_id"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list periods", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodsFromDomain(periods))
}

// Get retrieves a fiscal period by ID.
func (h *PeriodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing period ID", "")
		return
	}

	period, err := h.periodUC.GetPeriod(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get period", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PeriodFromDomain(period))
}
