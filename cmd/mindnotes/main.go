// Package main runs the journal in the terminal.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/mindnotes/internal/adapters/storage/jsonfile"
	"github.com/jsamuelsen/mindnotes/internal/adapters/tui"
	"github.com/jsamuelsen/mindnotes/internal/app"
	"github.com/jsamuelsen/mindnotes/internal/platform/config"
	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
)

// Version is injected via ldflags.
var Version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mindnotes: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadProfile()
	if err != nil {
		return err
	}

	// The screen belongs to the UI: log to the rolling file or nowhere.
	logger := logging.NewWithWriter(logging.ConfigFrom(&cfg.Log, cfg.App.Name, Version), nil)
	logging.SetDefault(logger)

	notes := jsonfile.OpenNoteStore(ctx, jsonfile.NoteStoreConfig{Path: cfg.Storage.NotesPath, Logger: logger})
	quotes := jsonfile.OpenQuoteStore(ctx, jsonfile.QuoteStoreConfig{Path: cfg.Storage.QuotesPath, Logger: logger})

	logger.Info("journal opened",
		slog.String("notes", notes.Path()),
		slog.String("quotes", quotes.Path()),
	)

	model := tui.New(ctx, tui.Config{
		Notes:      app.NewNoteService(app.NoteServiceConfig{Notes: notes, Logger: logger}),
		Quotes:     app.NewQuoteService(app.QuoteServiceConfig{Quotes: quotes, Logger: logger}),
		Statistics: app.NewStatisticsService(notes, logger),
		Cards: tui.CardDimensions{
			Width:   cfg.UI.CardWidth,
			Height:  cfg.UI.CardHeight,
			Spacing: cfg.UI.CardSpacing,
		},
		Logger: logger,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return fmt.Errorf("running terminal ui: %w", err)
	}

	logger.Info("journal closed")

	return nil
}
