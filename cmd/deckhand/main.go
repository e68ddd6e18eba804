package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tabletoptools/deckhand/internal/deck"
	"github.com/tabletoptools/deckhand/internal/deckfile"
	"github.com/tabletoptools/deckhand/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var decksPath string
	var seed uint64
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/deckhand/config.yml)")
	flag.StringVar(&decksPath, "decks", "", "deck definition file or directory of definitions")
	flag.Uint64Var(&seed, "seed", 0, "random seed for reproducible sessions (0 = auto)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Deckhand - Deck Drawing Table\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if decksPath != "" {
		cfg.DecksPath = decksPath
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	loaded, err := deckfile.LoadPath(cfg.DecksPath)
	if err != nil {
		return fmt.Errorf("loading decks from %s: %w", cfg.DecksPath, err)
	}

	manager := deck.NewManager()
	if err := deckfile.Register(manager, loaded); err != nil {
		return err
	}

	var rng deck.RNG = deck.StdRNG{}
	if cfg.Seed != 0 {
		rng = deck.SeededRNG(cfg.Seed)
	}

	table := tui.NewTableModel(manager, rng)

	p := tea.NewProgram(table, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
