package main

import (
	"fmt"
	"os"

	"bhaskara/internal/observability"
	"bhaskara/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; existing variables win.
	_ = godotenv.Load()

	if err := observability.InitFileLogger(os.Getenv("BHASKARA_TUI_LOG")); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer observability.SyncLogger()

	if _, err := tea.NewProgram(tui.New()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "bhaskara: %v\n", err)
		os.Exit(1)
	}
}
