package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
)

// ChartService defines the behavior needed by ChartHandler.
type ChartService interface {
	AnalyzeChart(ctx context.Context, companyID string) (chart.Profile, error)
	ClassifyAccount(ctx context.Context, companyID, code, name string) (classify.Result, error)
}

// ChartHandler handles structural analysis and classification requests.
type ChartHandler struct {
	chartUC ChartService
}

// NewChartHandler creates a new ChartHandler.
func NewChartHandler(chartUC ChartService) *ChartHandler {
	return &ChartHandler{chartUC: chartUC}
}

// Analyze infers the code-scheme profile, either from an explicit sample or
// from the stored chart.
func (h *ChartHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if len(req.Codes) > 0 {
		writeJSON(w, http.StatusOK, dto.ProfileFromChart(chart.Analyze(req.Codes)))
		return
	}

	profile, err := h.chartUC.AnalyzeChart(r.Context(), req.CompanyID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to analyze chart", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileFromChart(profile))
}

// Classify classifies one account.
func (h *ChartHandler) Classify(w http.ResponseWriter, r *http.Request) {
	var req dto.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "missing account code", "")
		return
	}

	result, err := h.chartUC.ClassifyAccount(r.Context(), req.CompanyID, req.Code, req.Name)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to classify account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ClassificationFromResult(result))
}
