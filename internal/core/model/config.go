package model

// Mode is one of the three countdown purposes.
type Mode int

const (
	ModeWork Mode = iota
	ModeShortBreak
	ModeLongBreak
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeWork, ModeShortBreak, ModeLongBreak}

// String returns the stable identifier used in config files and logs.
func (mode Mode) String() string {
	switch mode {
	case ModeWork:
		return "work"
	case ModeShortBreak:
		return "short_break"
	case ModeLongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Label returns the human readable mode name.
func (mode Mode) Label() string {
	switch mode {
	case ModeWork:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short break"
	case ModeLongBreak:
		return "Long break"
	default:
		return ""
	}
}

// ParseMode resolves a mode from its identifier or label.
func ParseMode(value string) (Mode, bool) {
	for _, mode := range Modes {
		if value == mode.String() || value == mode.Label() {
			return mode, true
		}
	}
	return ModeWork, false
}

const (
	MinMinutes          = 1
	MaxWorkMinutes      = 120
	MaxBreakMinutes     = 60
	DefaultWorkMinutes  = 25
	DefaultShortMinutes = 5
	DefaultLongMinutes  = 15
)

// Durations holds the configured length of each mode in whole minutes.
type Durations struct {
	Work       int
	ShortBreak int
	LongBreak  int
}

// DefaultDurations returns the 25/5/15 schedule.
func DefaultDurations() Durations {
	return Durations{
		Work:       DefaultWorkMinutes,
		ShortBreak: DefaultShortMinutes,
		LongBreak:  DefaultLongMinutes,
	}
}

// Minutes returns the configured duration for mode.
func (durations Durations) Minutes(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return durations.ShortBreak
	case ModeLongBreak:
		return durations.LongBreak
	default:
		return durations.Work
	}
}

// With returns a copy with mode's duration replaced by the clamped value.
func (durations Durations) With(mode Mode, minutes int) Durations {
	minutes = ClampMinutes(mode, minutes)
	switch mode {
	case ModeShortBreak:
		durations.ShortBreak = minutes
	case ModeLongBreak:
		durations.LongBreak = minutes
	default:
		durations.Work = minutes
	}
	return durations
}

// Clamp corrects every duration into its allowed range.
func (durations Durations) Clamp() Durations {
	return Durations{
		Work:       ClampMinutes(ModeWork, durations.Work),
		ShortBreak: ClampMinutes(ModeShortBreak, durations.ShortBreak),
		LongBreak:  ClampMinutes(ModeLongBreak, durations.LongBreak),
	}
}

// MaxMinutes returns the upper bound for mode.
func MaxMinutes(mode Mode) int {
	if mode == ModeWork {
		return MaxWorkMinutes
	}
	return MaxBreakMinutes
}

// ClampMinutes limits minutes to [MinMinutes, MaxMinutes(mode)].
func ClampMinutes(mode Mode, minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if upper := MaxMinutes(mode); minutes > upper {
		return upper
	}
	return minutes
}
