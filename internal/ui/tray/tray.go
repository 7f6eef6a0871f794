package tray

import (
	"setpace/internal/core/interval"
	"setpace/internal/ui/timer"
	"setpace/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// systemTray is the part of desktop.App the manager drives.
type systemTray interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Manager handles system tray state.
type Manager struct {
	app        systemTray
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	resetItem  *fyne.MenuItem
	callbacks  Callbacks
	paused     bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	return newManager(app, callbacks)
}

func newManager(app systemTray, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Ready", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})
	manager.pauseItem.Disabled = true

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	manager.resetItem.Disabled = true

	manager.app.SetSystemTrayIcon(resources.MustIcon("app.svg"))
	manager.refreshMenu()
	return manager
}

// Update mirrors a session snapshot into the menu and icon.
func (manager *Manager) Update(snapshot interval.Snapshot) {
	manager.statusItem.Label = timer.StatusLine(snapshot)

	running := snapshot.Status.Running()
	manager.pauseItem.Disabled = !running
	manager.resetItem.Disabled = snapshot.Status == interval.StatusIdle
	if snapshot.IsPaused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}

	paused := running && snapshot.IsPaused
	if paused != manager.paused {
		manager.paused = paused
		icon := "app.svg"
		if paused {
			icon = "paused.svg"
		}
		manager.app.SetSystemTrayIcon(resources.MustIcon(icon))
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	manager.app.SetSystemTrayMenu(fyne.NewMenu("SetPace",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Show", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.pauseItem,
		manager.resetItem,
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
