package main

import (
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rayanxn/film-tui/internal/config"
	"github.com/rayanxn/film-tui/internal/logging"
	"github.com/rayanxn/film-tui/internal/swapi"
	"github.com/rayanxn/film-tui/internal/ui/views"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	client := swapi.NewClient(cfg.Endpoint, &http.Client{Timeout: cfg.RequestTimeout}, logger)
	fetcher, err := swapi.NewCachedClient(client, cfg.CacheSize, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create cache: %v\n", err)
		os.Exit(1)
	}

	logger.Info().
		Str("endpoint", cfg.Endpoint).
		Int("page_size", cfg.PageSize).
		Msg("starting")

	app := views.NewAppModel(cfg, fetcher, logger)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
