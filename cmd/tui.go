package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/tui"
	"pomodoro/internal/ui/preferences"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings(opts)
			m := tui.New(settings.Durations(), tui.Options{
				OnDurations: func(durations model.Durations) {
					updated := preferences.FromDurations(durations)
					updated.StartHidden = settings.StartHidden
					settings = updated
					saveSettings(opts, settings)
				},
			})
			_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}
