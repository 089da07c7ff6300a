package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/imoya/tuidialog/dialog"
	"github.com/imoya/tuidialog/logging"
)

const Version = "0.1.0"

func init() {
	initColorProfile()
}

// initColorProfile configures the lipgloss color profile based on
// terminal capabilities. Prefers TrueColor, falls back to ANSI256.
func initColorProfile() {
	// User override via environment variable
	// TUIDIALOG_COLOR: truecolor, 256, 16, none
	if colorEnv := os.Getenv("TUIDIALOG_COLOR"); colorEnv != "" {
		switch strings.ToLower(colorEnv) {
		case "truecolor", "true", "24bit":
			lipgloss.SetColorProfile(termenv.TrueColor)
			return
		case "256", "ansi256":
			lipgloss.SetColorProfile(termenv.ANSI256)
			return
		case "16", "ansi", "basic":
			lipgloss.SetColorProfile(termenv.ANSI)
			return
		case "none", "off", "ascii":
			lipgloss.SetColorProfile(termenv.Ascii)
			return
		}
	}

	if colorTerm := os.Getenv("COLORTERM"); colorTerm == "truecolor" || colorTerm == "24bit" {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.ANSI256)
}

// applyUISettings pushes config preferences into the dialog package.
func applyUISettings(cfg *Config) {
	if cfg.UI.PositiveLabel != "" {
		dialog.DefaultPositiveLabel = cfg.UI.PositiveLabel
	}
	if cfg.UI.NegativeLabel != "" {
		dialog.DefaultNegativeLabel = cfg.UI.NegativeLabel
	}
	if cfg.UI.AccentColor != "" {
		dialog.ColorAccent = lipgloss.Color(cfg.UI.AccentColor)
	}
	if cfg.UI.BorderColor != "" {
		dialog.ColorBorder = lipgloss.Color(cfg.UI.BorderColor)
		dialog.ColorTitle = lipgloss.Color(cfg.UI.BorderColor)
	}
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	noRestore := flag.Bool("no-restore", false, "start without reopening persisted dialogs")
	flag.Parse()

	if *showVersion {
		fmt.Printf("dialog-demo v%s\n", Version)
		return
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyUISettings(cfg)

	level := cfg.Logs.Level
	if *logLevel != "" {
		level = *logLevel
	}
	logDir, err := cfg.LogDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.Config{
		LogDir:    logDir,
		Level:     level,
		Format:    cfg.Logs.Format,
		MaxSizeMB: cfg.Logs.MaxSizeMB,
	})
	defer logging.Shutdown()

	statePath, err := cfg.StatePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store := dialog.NewStateStore(statePath)

	var watcher *ConfigWatcher
	if configPath, err := ConfigPath(); err == nil {
		if w, err := NewConfigWatcher(configPath); err == nil {
			watcher = w
		} else {
			logging.ForComponent(logging.CompConfig).Warn("config watcher unavailable", "error", err)
		}
	}

	home := newHome(cfg, store, watcher)
	if !*noRestore {
		home.restoreDialogs()
	}

	p := tea.NewProgram(
		home,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
