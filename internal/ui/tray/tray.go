package tray

import (
	"fmt"

	"pomodoro/internal/core/coordinator"
	"pomodoro/internal/ui/display"

	"fyne.io/fyne/v2"
)

const menuTitle = "Pomodoro Timer"

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnStart    func()
	OnPause    func()
	OnReset    func()
	OnSettings func()
	OnQuit     func()
}

// Icons are swapped as the timer starts and stops.
type Icons struct {
	Running fyne.Resource
	Paused  fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app         App
	icons       Icons
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	menu        *fyne.Menu
	statusLabel string
	running     bool
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		icons:     icons,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true

	manager.startItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnStart != nil {
			manager.callbacks.OnStart()
		}
	})
	manager.pauseItem = fyne.NewMenuItem("Pause", func() {
		if manager.callbacks.OnPause != nil {
			manager.callbacks.OnPause()
		}
	})
	manager.pauseItem.Disabled = true

	reset := fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})
	settings := fyne.NewMenuItem("Settings", func() {
		if manager.callbacks.OnSettings != nil {
			manager.callbacks.OnSettings()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.pauseItem,
		reset,
		settings,
		fyne.NewMenuItemSeparator(),
		quit,
	)
	app.SetSystemTrayMenu(manager.menu)
	manager.applyIcon()

	return manager
}

// SetStatus mirrors the coordinator status in the tray.
func (manager *Manager) SetStatus(status coordinator.Status) {
	label := StatusText(status)
	runningChanged := manager.running != status.Running
	if label == manager.statusLabel && !runningChanged {
		return
	}

	manager.statusLabel = label
	manager.running = status.Running
	manager.statusItem.Label = "Status: " + label
	manager.startItem.Disabled = status.Running
	manager.pauseItem.Disabled = !status.Running
	if runningChanged {
		manager.applyIcon()
	}
	manager.refreshMenu()
}

// Status returns the last status line.
func (manager *Manager) Status() string {
	return manager.statusLabel
}

// StatusText renders a status for the tray menu.
func StatusText(status coordinator.Status) string {
	if status.Restarting {
		return status.Label()
	}
	return fmt.Sprintf("%s %s", status.Label(), display.FormatTime(status.Seconds))
}

func (manager *Manager) applyIcon() {
	icon := manager.icons.Paused
	if manager.running {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}
