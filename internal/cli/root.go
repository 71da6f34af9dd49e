// Package cli wires the enigma command line: flag handling, config
// loading, and the choice between the interactive page and the static
// headless render.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Anshit-Gupta/Enigma/internal/config"
	"github.com/Anshit-Gupta/Enigma/internal/ui"
	"github.com/Anshit-Gupta/Enigma/pkg/version"
)

var (
	flagConfig      string
	flagReduced     bool
	flagHeadless    bool
	flagNoColor     bool
	flagWriteConfig bool
)

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "The Enigma society landing page, in your terminal",
	Long: `Enigma renders the Enigma technology society's landing page as an
interactive terminal experience: a multilingual hero banner, scroll-driven
section reveals, animated statistics, the team grid, and a contact form.

Without a TTY (or with --headless) the page prints once in its final,
fully revealed state.`,
	Version: version.GetVersion(),
	RunE:    runPage,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("enigma %s\n", version.GetVersion()))

	rootCmd.Flags().StringVar(&flagConfig, "config", "enigma.yaml", "path to the configuration file")
	rootCmd.Flags().BoolVar(&flagReduced, "reduced-motion", false, "disable all non-essential animation")
	rootCmd.Flags().BoolVar(&flagHeadless, "headless", false, "print the static page instead of running the TUI")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&flagWriteConfig, "write-config", false, "write the effective configuration to --config and exit")
}

func runPage(cmd *cobra.Command, _ []string) error {
	cfg := config.Load(flagConfig)
	if flagReduced {
		cfg.Motion.Reduced = true
	}
	if flagNoColor {
		cfg.Theme.NoColor = true
	}

	if flagWriteConfig {
		if err := config.Save(cfg, flagConfig); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flagConfig)
		return nil
	}

	hm := ui.NewHeadlessManager()
	if cmd.Flags().Changed("headless") {
		hm.ForceHeadless(flagHeadless)
	}

	theme := ui.NewTheme(cfg.Theme)
	if hm.IsHeadless() {
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderStatic(theme))
		return nil
	}

	if err := ui.Run(cfg, theme); err != nil {
		return fmt.Errorf("run page: %w", err)
	}
	return nil
}
