package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/closing"
	"github.com/quipuapp/quipu/internal/infrastructure/metrics"
)

// ClosingService defines the behavior needed by ClosingHandler.
type ClosingService interface {
	PreviewAdjustments(ctx context.Context, periodID string) (*closing.Result, error)
	PreviewClosing(ctx context.Context, periodID string) (*closing.Result, error)
	RunClosing(ctx context.Context, periodID string) (*closing.Result, error)
}

// ClosingHandler handles closing-run HTTP requests.
type ClosingHandler struct {
	closingUC ClosingService
	metrics   *metrics.Metrics
}

// NewClosingHandler creates a new ClosingHandler.
func NewClosingHandler(closingUC ClosingService, m *metrics.Metrics) *ClosingHandler {
	return &ClosingHandler{closingUC: closingUC, metrics: m}
}

// PreviewAdjustments returns AITB and depreciation proposals without
// persisting.
func (h *ClosingHandler) PreviewAdjustments(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, h.closingUC.PreviewAdjustments)
}

// PreviewClosing returns the full closing set without persisting.
func (h *ClosingHandler) PreviewClosing(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, h.closingUC.PreviewClosing)
}

func (h *ClosingHandler) preview(w http.ResponseWriter, r *http.Request, run func(context.Context, string) (*closing.Result, error)) {
	periodID := chi.URLParam(r, "id")
	if periodID == "" {
		writeError(w, http.StatusBadRequest, "missing period ID", "")
		return
	}

	result, err := run(r.Context(), periodID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute proposals", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClosingResultFromDomain(result))
}

// Run executes and persists a closing run. The route carries idempotency
// middleware; re-posting the same key replays the stored response.
func (h *ClosingHandler) Run(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "id")
	if periodID == "" {
		writeError(w, http.StatusBadRequest, "missing period ID", "")
		return
	}

	result, err := h.closingUC.RunClosing(r.Context(), periodID)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ClosingErrors.Inc()
		}
		writeError(w, mapDomainError(err), "failed to close period", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ClosingsRun.Inc()
		h.metrics.ProposalsGenerated.Add(float64(len(result.Transactions)))
		aitb, _ := result.Summary.TotalAITB.Float64()
		h.metrics.AITBTotal.Observe(aitb)
		dep, _ := result.Summary.TotalDepreciation.Float64()
		h.metrics.DepreciationTotal.Observe(dep)
	}

	writeJSON(w, http.StatusCreated, dto.ClosingResultFromDomain(result))
}
