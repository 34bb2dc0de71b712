package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/preferences"
)

var durationFlags = map[string]model.Mode{
	"work":  model.ModeWork,
	"short": model.ModeShortBreak,
	"long":  model.ModeLongBreak,
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved durations",
	}
	cmd.AddCommand(newConfigShowCmd(opts), newConfigSetCmd(opts), newConfigPathCmd(opts))
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSettings(cmd.OutOrStdout(), loadSettings(opts))
			return nil
		},
	}
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	var (
		minutes     = map[string]*int{}
		startHidden bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change durations; out-of-range values are clamped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings(opts)
			durations := settings.Durations()
			changed := false

			cmd.LocalFlags().Visit(func(flag *pflag.Flag) {
				if flag.Name == "start-hidden" {
					changed = true
					settings.StartHidden = startHidden
					return
				}
				mode, ok := durationFlags[flag.Name]
				if !ok {
					return
				}
				changed = true
				requested := *minutes[flag.Name]
				durations = durations.With(mode, requested)
				if applied := durations.Minutes(mode); applied != requested {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d minutes is out of range, using %d\n", mode.Label(), requested, applied)
				}
			})
			if !changed {
				return fmt.Errorf("nothing to set: use --work, --short, --long or --start-hidden")
			}

			updated := preferences.FromDurations(durations)
			updated.StartHidden = settings.StartHidden
			saveSettings(opts, updated)
			printSettings(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	for name, mode := range durationFlags {
		minutes[name] = cmd.Flags().Int(name, model.DefaultDurations().Minutes(mode),
			fmt.Sprintf("%s minutes (%d-%d)", mode.Label(), model.MinMinutes, model.MaxMinutes(mode)))
	}
	cmd.Flags().BoolVar(&startHidden, "start-hidden", false, "start hidden in the system tray")

	return cmd
}

func newConfigPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), opts.configPath)
		},
	}
}

func printSettings(w io.Writer, settings preferences.Settings) {
	durations := settings.Durations()
	for _, mode := range model.Modes {
		fmt.Fprintf(w, "%-12s %d min\n", mode.Label()+":", durations.Minutes(mode))
	}
	fmt.Fprintf(w, "%-12s %t\n", "Start hidden:", settings.StartHidden)
}
