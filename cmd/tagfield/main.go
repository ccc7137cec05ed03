package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gravitrone/tagfield/internal/cmd"
	"github.com/gravitrone/tagfield/internal/config"
	"github.com/gravitrone/tagfield/internal/ui"
)

func main() {
	var (
		name     string
		value    string
		options  []string
		preset   string
		readOnly bool
	)

	root := &cobra.Command{
		Use:   "tagfield",
		Short: "Tagfield - interactive tag input",
		Long:  "Tagfield CLI: edit a comma-separated tag value in a terminal form, with suggestions and tag creation from a configurable option pool.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(name, value, options, preset, readOnly)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&name, "name", "tags", "field name for the serialized value")
	root.Flags().StringVar(&value, "value", "", "initial comma-separated value")
	root.Flags().StringSliceVar(&options, "options", nil, "option pool (comma-separated, repeatable)")
	root.Flags().StringVar(&preset, "preset", "", "named option pool from the config file")
	root.Flags().BoolVar(&readOnly, "read-only", false, "render the collection without accepting edits")

	root.AddCommand(cmd.SlugifyCmd())
	root.AddCommand(cmd.PresetsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func runTUI(name, value string, options []string, preset string, readOnly bool) error {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		cfg = nil
	}

	pool, err := resolveOptions(cfg, options, preset)
	if err != nil {
		return err
	}

	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return fmt.Errorf("tagfield needs an interactive terminal; use 'tagfield slugify' in scripts")
	}

	form := ui.NewFormModel(name, value, pool, readOnly)
	app := ui.NewApp(form, cfg)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// resolveOptions picks the option pool: the --options flag wins, then the
// named --preset, then the config default preset, then the base pool.
func resolveOptions(cfg *config.Config, options []string, preset string) ([]string, error) {
	if len(options) > 0 {
		return trimAll(options), nil
	}
	if preset != "" {
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q: no config file at %s", preset, config.Path())
		}
		opts, ok := cfg.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return opts, nil
	}
	if cfg == nil {
		return nil, nil
	}
	if cfg.DefaultPreset != "" {
		if opts, ok := cfg.Preset(cfg.DefaultPreset); ok {
			return opts, nil
		}
	}
	return cfg.Options, nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
