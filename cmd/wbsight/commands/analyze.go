package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonny/wbsight/internal/analysis"
	"github.com/wonny/wbsight/internal/contracts"
	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "2개 기간 비교 분석 실행",
	Long: `두 기간의 판매/콘텐츠/광고/리뷰 데이터를 수집하고 SKU별 분석
리포트를 JSON으로 출력합니다.

Example:
  go run ./cmd/wbsight analyze \
    --p1-from 2025-06-01 --p1-to 2025-06-30 \
    --p2-from 2025-05-01 --p2-to 2025-05-31 \
    --sku ABC-123 --sku DEF-456

  go run ./cmd/wbsight analyze --p1-from ... --sku all --cost-file costs.json`,
	RunE: runAnalyze,
}

var (
	analyzeP1From string
	analyzeP1To   string
	analyzeP2From string
	analyzeP2To   string
	analyzeSKUs   []string
	costFile      string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeP1From, "p1-from", "", "기간 1 시작일 (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeP1To, "p1-to", "", "기간 1 종료일 (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeP2From, "p2-from", "", "기간 2 시작일 (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeP2To, "p2-to", "", "기간 2 종료일 (YYYY-MM-DD)")
	analyzeCmd.Flags().StringArrayVar(&analyzeSKUs, "sku", nil, `분석할 SKU (반복 지정, "all"은 전체)`)

	analyzeCmd.Flags().StringVar(&costFile, "cost-file", "", "SKU별 원가 JSON 파일 {\"sku\": 123.0}")

	_ = analyzeCmd.MarkFlagRequired("p1-from")
	_ = analyzeCmd.MarkFlagRequired("p1-to")
	_ = analyzeCmd.MarkFlagRequired("p2-from")
	_ = analyzeCmd.MarkFlagRequired("p2-to")
	_ = analyzeCmd.MarkFlagRequired("sku")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	req := analysis.Request{
		Period1: contracts.PeriodWindow{DateFrom: analyzeP1From, DateTo: analyzeP1To},
		Period2: contracts.PeriodWindow{DateFrom: analyzeP2From, DateTo: analyzeP2To},
	}

	if err := req.Period1.Validate(); err != nil {
		return fmt.Errorf("period 1: %w", err)
	}
	if err := req.Period2.Validate(); err != nil {
		return fmt.Errorf("period 2: %w", err)
	}

	for _, sku := range analyzeSKUs {
		if sku == "all" {
			req.AllSKUs = true
			req.SKUs = nil
			break
		}
		req.SKUs = append(req.SKUs, sku)
	}

	if costFile != "" {
		data, err := os.ReadFile(costFile)
		if err != nil {
			return fmt.Errorf("read cost file: %w", err)
		}
		if err := json.Unmarshal(data, &req.CostPrices); err != nil {
			return fmt.Errorf("parse cost file: %w", err)
		}
	}

	manager := buildManager(cfg, log)

	result, err := manager.Run(context.Background(), req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	out, err := json.MarshalIndent(result.Report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "\n✅ %d SKU analyzed in %.1fs (run %s)\n",
		len(result.Report), result.Duration.Seconds(), result.RunID)

	return nil
}
