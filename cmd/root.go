package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gabe/intpick/internal/config"
	"github.com/gabe/intpick/internal/logging"
)

var (
	configPath string
	logFile    string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "intpick",
	Short: "intpick - bounded integer picker for the terminal",
	Long: `A terminal widget for picking an integer inside a range with the keyboard
and the mouse wheel. Without a subcommand, intpick runs the demo.`,
	SilenceUsage: true,
	RunE:         runDemo,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	bindGlobalFlags(rootCmd.PersistentFlags())
}

func bindGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/intpick/config.toml)")
	flags.StringVar(&logFile, "log-file", "", "append logs to this file")
	flags.BoolVar(&debug, "debug", false, "log at debug level")
}

// resolveConfigPath returns the config file to use and whether the user
// named it explicitly.
func resolveConfigPath() (string, bool, error) {
	if configPath != "" {
		return configPath, true, nil
	}
	path, err := config.DefaultPath()
	return path, false, err
}

// loadConfig reads the config file. A missing default file yields the
// built-in defaults; a missing explicit file is an error. The returned path
// is empty when no file backs the config.
func loadConfig() (*config.Config, string, error) {
	path, explicit, err := resolveConfigPath()
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return config.DefaultConfig(), "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level = slog.LevelDebug
	}

	path := cfg.Logging.File
	if logFile != "" {
		path = logFile
	}
	return logging.Open(path, level)
}
