package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"spellsheet/internal/adapters/editor"
	"spellsheet/internal/adapters/tui"
	"spellsheet/internal/bootstrap"
	"spellsheet/internal/config"
	"spellsheet/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file
	logs, logFile, err := logger.SetupFile(cfg.Log, config.DataDir())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	ctx := context.Background()
	rt, err := bootstrap.Open(ctx, cfg, logs)
	if err != nil {
		return err
	}
	defer rt.Close()

	app := tui.NewApp(ctx, rt.Session, editor.NewOpener())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logs.Error("tui stopped", "error", err)
		return err
	}
	return nil
}
