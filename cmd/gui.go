package main

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/timerwindow"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"
)

// notifierFunc adapts a function to timekeeper.Notifier.
type notifierFunc func(title, message string)

func (fn notifierFunc) Notify(title, message string) {
	fn(title, message)
}

func runGUI(opts *rootOptions) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logging.Warnf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadSettings(opts)

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconApp))

	keeper := timekeeper.New(settings.Durations(), timekeeper.Config{TickInterval: time.Second})
	defer keeper.Close()

	var prefsWindow *preferences.Window
	timerWindow := timerwindow.New(fyneApp, keeper, func() {
		prefsWindow.Show()
	})

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		durations := updated.Durations()
		for _, mode := range settings.Changed(updated) {
			keeper.SetDuration(mode, durations.Minutes(mode))
		}
		settings = updated
		saveSettings(opts, settings)
	})

	var trayApp tray.App
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayApp = desktopApp
		desktopApp.SetSystemTrayWindow(timerWindow.Window())
	} else {
		logging.Warnf("system tray unsupported on this platform")
		timerWindow.Window().SetCloseIntercept(fyneApp.Quit)
	}

	trayManager := tray.New(trayApp, fyneApp, tray.Callbacks{
		OnShow:        timerWindow.Show,
		OnToggle:      keeper.Toggle,
		OnReset:       keeper.Reset,
		OnSelectMode:  keeper.SetMode,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			keeper.Close()
			fyneApp.Quit()
		},
	})

	keeper.SetNotifier(notifierFunc(func(title, message string) {
		fyne.Do(func() {
			trayManager.Notify(title, message)
		})
	}))

	render := func(event timekeeper.Event) {
		timerWindow.Render(event)
		trayManager.Update(event)
	}
	render(timekeeper.NewEvent(timekeeper.EventStateChange, keeper.Snapshot(), time.Now()))

	events := keeper.Subscribe(8)
	go func() {
		for event := range events {
			logging.Debugf("%s %s %s", event.Type, event.Mode, event.Clock)
			fyne.Do(func() {
				render(event)
			})
		}
	}()

	if !settings.StartHidden || !hasTray {
		timerWindow.Show()
	}
	fyneApp.Run()
	return nil
}
