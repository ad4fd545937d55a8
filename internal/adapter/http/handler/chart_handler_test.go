package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quipuapp/quipu/internal/adapter/http/dto"
	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/classify"
	"github.com/quipuapp/quipu/internal/domain"
)

type chartServiceStub struct {
	analyzeFn  func(ctx context.Context, companyID string) (chart.Profile, error)
	classifyFn func(ctx context.Context, companyID, code, name string) (classify.Result, error)
}

func (s *chartServiceStub) AnalyzeChart(ctx context.Context, companyID string) (chart.Profile, error) {
	return s.analyzeFn(ctx, companyID)
}

func (s *chartServiceStub) ClassifyAccount(ctx context.Context, companyID, code, name string) (classify.Result, error) {
	return s.classifyFn(ctx, companyID, code, name)
}

func TestChartHandler_Analyze_InlineCodes(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{
		analyzeFn: func(ctx context.Context, companyID string) (chart.Profile, error) {
			t.Fatal("AnalyzeChart should not be called when codes are supplied inline")
			return chart.Profile{}, nil
		},
	})

	body, _ := json.Marshal(dto.AnalyzeChartRequest{
		Codes: []string{"1", "1.1", "1.1.01", "2", "2.1"},
	})
	req := httptest.NewRequest(http.MethodPost, "/chart/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.HasSeparator || resp.Separator != "." {
		t.Fatalf("expected dot separator, got %+v", resp)
	}
}

func TestChartHandler_Analyze_StoredChart(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{
		analyzeFn: func(ctx context.Context, companyID string) (chart.Profile, error) {
			if companyID != "co-1" {
				t.Fatalf("expected company co-1, got %s", companyID)
			}
			return chart.DefaultProfile(), nil
		},
	})

	body, _ := json.Marshal(dto.AnalyzeChartRequest{CompanyID: "co-1"})
	req := httptest.NewRequest(http.MethodPost, "/chart/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.MaxLevel != 4 {
		t.Fatalf("expected max level 4, got %d", resp.MaxLevel)
	}
}

func TestChartHandler_Analyze_InvalidJSON(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{})

	req := httptest.NewRequest(http.MethodPost, "/chart/analyze", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChartHandler_Classify(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{
		classifyFn: func(ctx context.Context, companyID, code, name string) (classify.Result, error) {
			if code != "1205" || name != "Edificios" {
				t.Fatalf("expected 1205/Edificios, got %s/%s", code, name)
			}
			return classify.Result{
				Type:       classify.NonMonetary,
				Tags:       []string{"Asset", "Depreciable"},
				Confidence: 0.9,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.ClassifyRequest{CompanyID: "co-1", Code: "1205", Name: "Edificios"})
	req := httptest.NewRequest(http.MethodPost, "/chart/classify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Classify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ClassificationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != string(classify.NonMonetary) || resp.Confidence != 0.9 {
		t.Fatalf("expected non-monetary at 0.9, got %+v", resp)
	}
}

func TestChartHandler_Classify_MissingCode(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{
		classifyFn: func(ctx context.Context, companyID, code, name string) (classify.Result, error) {
			t.Fatal("ClassifyAccount should not be called without a code")
			return classify.Result{}, nil
		},
	})

	body, _ := json.Marshal(dto.ClassifyRequest{CompanyID: "co-1", Name: "Edificios"})
	req := httptest.NewRequest(http.MethodPost, "/chart/classify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Classify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestChartHandler_Classify_NotFound(t *testing.T) {
	handler := NewChartHandler(&chartServiceStub{
		classifyFn: func(ctx context.Context, companyID, code, name string) (classify.Result, error) {
			return classify.Result{}, domain.ErrAccountNotFound
		},
	})

	body, _ := json.Marshal(dto.ClassifyRequest{CompanyID: "co-1", Code: "9999"})
	req := httptest.NewRequest(http.MethodPost, "/chart/classify", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Classify(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
