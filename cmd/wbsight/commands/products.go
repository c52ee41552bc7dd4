package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/logger"
)

// productsCmd represents the products command
var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "상품 목록 조회",
	Long: `셀러 계정의 전체 상품 목록을 창고별 재고 합산과 함께 출력합니다.

Example:
  go run ./cmd/wbsight products`,
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)
	manager := buildManager(cfg, log)

	products, err := manager.ListProducts(context.Background())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	fmt.Printf("=== Products (%d) ===\n", len(products))
	for _, p := range products {
		fmt.Printf("%-30s nmId=%-12d qty=%-6d brand=%s\n",
			p.SKU, p.NmID, p.Quantity, p.Brand)
	}

	return nil
}
