package main

import (
	"os"

	"github.com/wonny/wbsight/cmd/wbsight/commands"
)

// main is the entry point for the wbsight CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/wbsight [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
