package tray

import (
	"fmt"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/resources"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Sender delivers desktop notifications. fyne.App implements it.
type Sender interface {
	SendNotification(notification *fyne.Notification)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnSelectMode  func(model.Mode)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state and the end-of-period alert.
type Manager struct {
	app        App
	sender     Sender
	callbacks  Callbacks
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	modeItems  map[model.Mode]*fyne.MenuItem
	phase      timekeeper.Phase
}

// New creates a tray manager with the provided callbacks.
func New(app App, sender Sender, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		sender:    sender,
		callbacks: callbacks,
		modeItems: make(map[model.Mode]*fyne.MenuItem, len(model.Modes)),
		phase:     timekeeper.PhaseIdle,
	}

	manager.statusItem = fyne.NewMenuItem("Status: ready", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem("Show", func() {
		if manager.callbacks.OnShow != nil {
			manager.callbacks.OnShow()
		}
	})

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggle != nil {
			manager.callbacks.OnToggle()
		}
	})

	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	items := []*fyne.MenuItem{manager.statusItem, show, manager.toggleItem, reset, fyne.NewMenuItemSeparator()}
	for _, mode := range model.Modes {
		item := fyne.NewMenuItem(mode.Label(), func() {
			if manager.callbacks.OnSelectMode != nil {
				manager.callbacks.OnSelectMode(mode)
			}
		})
		manager.modeItems[mode] = item
		items = append(items, item)
	}

	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true
	items = append(items, fyne.NewMenuItemSeparator(), preferences, quit)

	manager.menu = fyne.NewMenu("Pomodoro", items...)
	manager.modeItems[model.ModeWork].Checked = true
	if app != nil {
		app.SetSystemTrayIcon(resources.MustIcon(resources.IconApp))
		app.SetSystemTrayMenu(manager.menu)
	}

	return manager
}

// Update reflects a timekeeper event in the menu and icon.
func (manager *Manager) Update(event timekeeper.Event) {
	for mode, item := range manager.modeItems {
		item.Checked = mode == event.Mode
	}

	switch event.Phase {
	case timekeeper.PhaseRunning:
		manager.toggleItem.Label = "Pause"
		manager.statusItem.Label = fmt.Sprintf("%s: %s", event.Mode.Label(), event.Clock)
	case timekeeper.PhaseCompleted:
		manager.toggleItem.Label = "Start"
		manager.statusItem.Label = fmt.Sprintf("%s: finished", event.Mode.Label())
	default:
		manager.toggleItem.Label = "Start"
		manager.statusItem.Label = fmt.Sprintf("%s: %s (paused)", event.Mode.Label(), event.Clock)
	}

	if event.Phase != manager.phase {
		manager.phase = event.Phase
		manager.refreshIcon()
	}
	manager.refreshMenu()
}

// Notify shows the end-of-period alert.
func (manager *Manager) Notify(title, message string) {
	if manager.sender == nil {
		return
	}
	manager.sender.SendNotification(fyne.NewNotification(title, message))
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	style := resources.IconPaused
	if manager.phase == timekeeper.PhaseRunning {
		style = resources.IconRunning
	}
	manager.app.SetSystemTrayIcon(resources.MustIcon(style))
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
