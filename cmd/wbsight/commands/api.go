package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/wbsight/internal/api"
	"github.com/wonny/wbsight/internal/api/handlers"
	"github.com/wonny/wbsight/internal/narrator"
	"github.com/wonny/wbsight/pkg/config"
	"github.com/wonny/wbsight/pkg/logger"
	"github.com/wonny/wbsight/pkg/redis"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "API 서버 시작",
	Long: `REST API 서버를 시작합니다.

이 명령어는:
- HTTP API 서버 시작
- 상품 목록/분석 엔드포인트 제공
- 분석 결과 캐시 + 후속 질문 제공

Endpoints:
  GET  /health        - Health check
  GET  /api/products  - 상품 목록 조회
  POST /api/analyze   - 2개 기간 비교 분석 실행
  POST /api/question  - 캐시된 분석에 대한 후속 질문

Example:
  go run ./cmd/wbsight api
  go run ./cmd/wbsight api --port 8090`,
	RunE: runAPIServer,
}

var (
	apiPort string
)

func init() {
	rootCmd.AddCommand(apiCmd)

	// Flags
	apiCmd.Flags().StringVar(&apiPort, "port", "", "API 서버 포트 (기본: config)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	fmt.Println("=== wbsight API Server ===")

	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Override port if flag is set
	if apiPort != "" {
		cfg.Port = apiPort
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	log.WithFields(map[string]interface{}{
		"port": cfg.Port,
		"env":  cfg.Env,
	}).Info("Initializing API server")

	// 3. Connect to Redis (unreachable Redis downgrades to no caching)
	redisClient, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, report caching disabled")
		redisClient = redis.Disabled()
	}
	defer redisClient.Close()
	cache := redis.NewCache(redisClient, "wbsight")

	// 4. Create marketplace client + analysis manager
	manager := buildManager(cfg, log)

	// 5. Create narration generator
	ctx := context.Background()
	gen, err := narrator.New(ctx, cfg.Gemini, log)
	if err != nil {
		return fmt.Errorf("create narrator: %w", err)
	}
	defer gen.Close()

	// 6. Create handler
	analysisHandler := handlers.NewAnalysisHandler(manager, gen, cache, log)

	// 7. Create router
	router := api.NewRouter(analysisHandler, log)

	// 8. Create server
	server := api.New(cfg, log, router)

	// 9. Start server with graceful shutdown
	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.Info("API server started successfully")
	fmt.Printf("\n✅ Server running on http://localhost:%s\n", cfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  GET  /api/products")
	fmt.Println("  POST /api/analyze")
	fmt.Println("  POST /api/question")
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
