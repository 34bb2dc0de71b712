package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pomodoro/internal/logging"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

const appName = "Pomodoro"

type rootOptions struct {
	configPath string
	verbosity  int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "pomodoro",
		Short:         "Pomodoro timer with a system tray icon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetVerbosity(opts.verbosity)
			if opts.configPath != "" {
				return nil
			}
			path, err := storage.ConfigPath(appName)
			if err != nil {
				return err
			}
			opts.configPath = path
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default: user config dir)")
	cmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "increase log detail (-v, -vv)")

	cmd.AddCommand(
		newTUICmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

// loadSettings falls back to defaults when the file cannot be read.
func loadSettings(opts *rootOptions) preferences.Settings {
	settings, err := storage.LoadSettings(opts.configPath)
	if err != nil {
		logging.Warnf("load settings: %v", err)
	}
	return settings
}

func saveSettings(opts *rootOptions, settings preferences.Settings) {
	if err := storage.SaveSettings(opts.configPath, settings); err != nil {
		logging.Errorf("save settings: %v", err)
		return
	}
	logging.Debugf("settings saved to %s", opts.configPath)
}
