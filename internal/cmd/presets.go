package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gravitrone/tagfield/internal/config"
	"github.com/gravitrone/tagfield/internal/slug"
)

// PresetsCmd returns the `tagfield presets` command group.
func PresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage option presets",
	}
	cmd.AddCommand(presetsListCmd())
	cmd.AddCommand(presetsAddCmd())
	cmd.AddCommand(presetsRemoveCmd())
	cmd.AddCommand(presetsUseCmd())
	return cmd
}

func presetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured presets",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadOrEmpty()
			if err != nil {
				return err
			}

			names := cfg.PresetNames()
			if len(names) == 0 {
				fmt.Println("no presets configured")
				return nil
			}

			for _, name := range names {
				opts, _ := cfg.Preset(name)
				marker := " "
				if name == cfg.DefaultPreset {
					marker = "*"
				}
				fmt.Printf("%s %s: %s\n", marker, name, strings.Join(opts, ", "))
			}
			return nil
		},
	}
}

func presetsAddCmd() *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "add <name> <options...>",
		Short: "Add or replace a preset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadOrEmpty()
			if err != nil {
				return err
			}

			opts := parseOptions(args[1:])
			if normalize {
				opts = slug.Decode(strings.Join(opts, ","))
			}
			if len(opts) == 0 {
				return fmt.Errorf("no options given")
			}

			if cfg.Presets == nil {
				cfg.Presets = map[string][]string{}
			}
			cfg.Presets[args[0]] = opts

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}
			fmt.Printf("preset %s saved (%d options)\n", args[0], len(opts))
			return nil
		},
	}
	cmd.Flags().BoolVar(&normalize, "slug", false, "normalize options into tag form before saving")
	return cmd
}

func presetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			name := args[0]
			if _, ok := cfg.Presets[name]; !ok {
				return fmt.Errorf("preset not found: %s", name)
			}
			delete(cfg.Presets, name)
			if cfg.DefaultPreset == name {
				cfg.DefaultPreset = ""
			}

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}
			fmt.Printf("preset %s removed\n", name)
			return nil
		},
	}
}

func presetsUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Set the default preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			name := args[0]
			if _, ok := cfg.Preset(name); !ok {
				return fmt.Errorf("preset not found: %s", name)
			}
			cfg.DefaultPreset = name

			if err := cfg.Save(); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}
			fmt.Printf("default preset: %s\n", name)
			return nil
		},
	}
}

func loadOrEmpty() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &config.Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// parseOptions splits every arg on commas, trims, and drops empties. Option
// text keeps its display case; normalization happens at commit time.
func parseOptions(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, piece := range strings.Split(arg, ",") {
			if p := strings.TrimSpace(piece); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
