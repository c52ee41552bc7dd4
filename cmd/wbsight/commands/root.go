package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wbsight",
	Short: "wbsight - Wildberries 셀러 분석 시스템",
	Long: `wbsight Unified CLI

Wildberries 셀러 API 기반 상품 분석 시스템.
재고 수집부터 LLM 요약 리포트까지.

Usage:
  go run ./cmd/wbsight [command]

Examples:
  go run ./cmd/wbsight api
  go run ./cmd/wbsight products
  go run ./cmd/wbsight analyze --p1-from 2025-06-01 --p1-to 2025-06-30 --p2-from 2025-05-01 --p2-to 2025-05-31 --sku all`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
