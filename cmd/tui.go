package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gabe/intpick/internal/logging"
	"github.com/gabe/intpick/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:     "demo",
	Aliases: []string{"tui"},
	Short:   "Launch the picker demo",
	Long: `Launch the interactive demo: three pickers side by side, each with a button
below it. Edits to the config file are applied while the demo runs.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger = logging.For(logger, "demo")
	logger.Info("starting demo", "config", path, "pickers", len(cfg.Pickers))

	return tui.Run(cmd.Context(), cfg, path, logger)
}
