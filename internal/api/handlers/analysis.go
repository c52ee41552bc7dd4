package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/wonny/wbsight/internal/analysis"
	"github.com/wonny/wbsight/internal/contracts"
	"github.com/wonny/wbsight/internal/narrator"
	"github.com/wonny/wbsight/pkg/logger"
	"github.com/wonny/wbsight/pkg/redis"
)

// AnalysisHandler handles the analysis API endpoints
// ⭐ SSOT: 분석 API 핸들러는 이 구조체에서만
type AnalysisHandler struct {
	manager  *analysis.Manager
	narrator *narrator.Generator
	cache    *redis.Cache
	logger   *logger.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(
	manager *analysis.Manager,
	gen *narrator.Generator,
	cache *redis.Cache,
	log *logger.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		manager:  manager,
		narrator: gen,
		cache:    cache,
		logger:   log,
	}
}

// ListProducts returns the seller's catalog with aggregated stock
// GET /api/products
func (h *AnalysisHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.manager.ListProducts(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list products")
		respondError(w, http.StatusBadGateway, "Failed to retrieve products from the marketplace")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"products_count": len(products),
		"products":       products,
	})
}

// AnalyzeRequest represents a comparative analysis request.
// sku_list is either the literal string "all" or an explicit array.
type AnalyzeRequest struct {
	Period1    contracts.PeriodWindow `json:"period_1"`
	Period2    contracts.PeriodWindow `json:"period_2"`
	SKUList    json.RawMessage        `json:"sku_list"`
	CostPrices map[string]float64     `json:"cost_prices"`
}

// AnalyzeResponse represents a completed analysis
type AnalyzeResponse struct {
	RequestID  string                   `json:"request_id"`
	LLMSummary string                   `json:"llm_summary"`
	RawData    contracts.AnalysisReport `json:"raw_data"`
}

// Analyze runs a two-period comparative analysis
// POST /api/analyze
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	runReq, err := buildRunRequest(req)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.manager.Run(ctx, runReq)
	if err != nil {
		if errors.Is(err, analysis.ErrNoMatchingSKUs) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.WithError(err).Error("Analysis run failed")
		respondError(w, http.StatusBadGateway, "Analysis failed: "+err.Error())
		return
	}

	summary := h.narrate(ctx, result.Report, runReq)

	if err := h.cache.Set(ctx, redis.ReportKey(result.RunID), result.Report, redis.TTLReport); err != nil {
		h.logger.WithError(err).Warn("Failed to cache analysis report")
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		RequestID:  result.RunID,
		LLMSummary: summary,
		RawData:    result.Report,
	})
}

// narrate produces the joined per-SKU narration in deterministic SKU
// order. Narration never fails the response.
func (h *AnalysisHandler) narrate(ctx context.Context, report contracts.AnalysisReport, req analysis.Request) string {
	sections := make([]string, 0, len(report))
	for _, sku := range sortedSKUs(report) {
		sections = append(sections, h.narrator.ComparativeReport(ctx, sku, report[sku], req.Period1, req.Period2))
	}
	return strings.Join(sections, "\n\n---\n\n")
}

// buildRunRequest validates the wire request into run parameters
func buildRunRequest(req AnalyzeRequest) (analysis.Request, error) {
	var runReq analysis.Request

	if err := req.Period1.Validate(); err != nil {
		return runReq, fmt.Errorf("period_1: %w", err)
	}
	if err := req.Period2.Validate(); err != nil {
		return runReq, fmt.Errorf("period_2: %w", err)
	}

	allSKUs, skus, err := parseSKUList(req.SKUList)
	if err != nil {
		return runReq, err
	}

	runReq = analysis.Request{
		SKUs:       skus,
		AllSKUs:    allSKUs,
		Period1:    req.Period1,
		Period2:    req.Period2,
		CostPrices: req.CostPrices,
	}
	return runReq, nil
}

// parseSKUList accepts either the literal "all" or a non-empty array
func parseSKUList(raw json.RawMessage) (bool, []string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false, nil, errors.New("sku_list is required")
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil || s != "all" {
			return false, nil, errors.New(`sku_list must be "all" or an array of SKUs`)
		}
		return true, nil, nil
	}

	var skus []string
	if err := json.Unmarshal(trimmed, &skus); err != nil {
		return false, nil, errors.New(`sku_list must be "all" or an array of SKUs`)
	}
	if len(skus) == 0 {
		return false, nil, errors.New("sku_list must not be empty")
	}
	return false, skus, nil
}

// QuestionRequest is a follow-up question about one aspect of a
// previously completed analysis
type QuestionRequest struct {
	RequestID    string `json:"request_id"`
	SKU          string `json:"sku"`
	Aspect       string `json:"aspect"`
	QuestionText string `json:"question_text"`
}

// defaultQuestion matches the follow-up behavior when no question text
// is supplied
const defaultQuestion = "Расскажи подробнее об этом аспекте."

// Question answers a follow-up question against a cached report
// POST /api/question
func (h *AnalysisHandler) Question(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RequestID == "" || req.SKU == "" || req.Aspect == "" {
		respondError(w, http.StatusBadRequest, "request_id, sku and aspect are required")
		return
	}
	if req.QuestionText == "" {
		req.QuestionText = defaultQuestion
	}

	var report contracts.AnalysisReport
	found, err := h.cache.Get(ctx, redis.ReportKey(req.RequestID), &report)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load cached report")
		respondError(w, http.StatusInternalServerError, "Failed to load cached report")
		return
	}
	if !found {
		respondError(w, http.StatusNotFound, "No analysis found for this request_id")
		return
	}

	skuReport, ok := report[req.SKU]
	if !ok || skuReport == nil {
		respondError(w, http.StatusNotFound, fmt.Sprintf("SKU %s is not part of this analysis", req.SKU))
		return
	}

	aspectData, ok := skuReport.Aspect(req.Aspect)
	if !ok {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Unknown aspect %q (valid: sales, card, ads, audience, reviews, profit)", req.Aspect))
		return
	}

	answer := h.narrator.AnswerQuestion(ctx, req.SKU, req.Aspect, aspectData, req.QuestionText)

	respondJSON(w, http.StatusOK, map[string]string{
		"answer": answer,
	})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

func sortedSKUs(report contracts.AnalysisReport) []string {
	skus := make([]string, 0, len(report))
	for sku := range report {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}
