package preferences

import "pomodoro/internal/core/model"

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	StartHidden       bool
}

// DefaultSettings returns the 25/5/15 schedule with the window visible.
func DefaultSettings() Settings {
	return FromDurations(model.DefaultDurations())
}

// FromDurations builds settings from configured durations.
func FromDurations(durations model.Durations) Settings {
	return Settings{
		WorkMinutes:       durations.Work,
		ShortBreakMinutes: durations.ShortBreak,
		LongBreakMinutes:  durations.LongBreak,
	}
}

// Durations converts settings to clamped mode durations.
func (settings Settings) Durations() model.Durations {
	return model.Durations{
		Work:       settings.WorkMinutes,
		ShortBreak: settings.ShortBreakMinutes,
		LongBreak:  settings.LongBreakMinutes,
	}.Clamp()
}

// Changed lists modes whose duration differs between settings and other.
func (settings Settings) Changed(other Settings) []model.Mode {
	current, next := settings.Durations(), other.Durations()
	var modes []model.Mode
	for _, mode := range model.Modes {
		if current.Minutes(mode) != next.Minutes(mode) {
			modes = append(modes, mode)
		}
	}
	return modes
}
