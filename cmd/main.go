package main

import (
	"errors"
	"log"
	"time"

	"pomodoro/internal/core/coordinator"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/display"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/scheduler"
	"pomodoro/internal/ui/tray"
	"pomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	appID         = "com.pomodoro.timer"
	configDirName = "PomodoroTimer"
)

// application owns every long-lived object of the process.
type application struct {
	state       *pomodoro.State
	mainWindow  *display.Window
	prefsWindow *preferences.Window
	trayManager *tray.Manager
	coordinator *coordinator.Coordinator
}

func main() {
	lock, err := platform.AcquireInstanceLock(appID)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return
		}
		log.Printf("single instance: %v; continuing without lock", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	config, err := storage.LoadTimerConfig(configDirName)
	if err != nil {
		log.Printf("load config: %v; using defaults", err)
		config = model.DefaultTimerConfig()
	}

	pomodoroApp, err := newApplication(app.NewWithID(appID), config)
	if err != nil {
		log.Fatalf("start timer: %v", err)
	}
	pomodoroApp.run()
}

func newApplication(fyneApp fyne.App, config model.TimerConfig) (*application, error) {
	state, err := pomodoro.New(config)
	if err != nil {
		return nil, err
	}
	fyneApp.SetIcon(resources.MustIcon(resources.AppIcon))

	pomodoroApp := &application{state: state}

	pomodoroApp.mainWindow = display.New(fyneApp, display.Actions{
		OnStart:    pomodoroApp.start,
		OnPause:    pomodoroApp.pause,
		OnReset:    pomodoroApp.reset,
		OnSettings: pomodoroApp.showSettings,
	})
	pomodoroApp.prefsWindow = preferences.New(fyneApp, pomodoroApp.saveSettings)

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		pomodoroApp.trayManager = tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon(resources.RunningIcon),
			Paused:  resources.MustIcon(resources.PausedIcon),
		}, tray.Callbacks{
			OnStart:    pomodoroApp.start,
			OnPause:    pomodoroApp.pause,
			OnReset:    pomodoroApp.reset,
			OnSettings: pomodoroApp.showSettings,
			OnQuit:     fyneApp.Quit,
		})
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	pomodoroApp.coordinator = coordinator.New(state, pomodoroApp.mainWindow, scheduler.New(), coordinator.Options{
		TickInterval: time.Second,
		OnStatus:     pomodoroApp.publishStatus,
	})
	pomodoroApp.coordinator.Refresh()

	return pomodoroApp, nil
}

func (pomodoroApp *application) run() {
	pomodoroApp.mainWindow.ShowAndRun()
}

func (pomodoroApp *application) start() {
	pomodoroApp.coordinator.Start()
}

func (pomodoroApp *application) pause() {
	pomodoroApp.coordinator.Pause()
}

func (pomodoroApp *application) reset() {
	pomodoroApp.coordinator.Reset()
}

func (pomodoroApp *application) showSettings() {
	pomodoroApp.prefsWindow.Show(pomodoroApp.coordinator.Config())
}

func (pomodoroApp *application) saveSettings(settings preferences.Settings) error {
	return pomodoroApp.coordinator.Reconfigure(
		settings.WorkMinutes,
		settings.BreakMinutes,
		settings.RestartDelaySeconds,
	)
}

func (pomodoroApp *application) publishStatus(status coordinator.Status) {
	pomodoroApp.mainWindow.SetStatus(status.Label())
	if pomodoroApp.trayManager != nil {
		pomodoroApp.trayManager.SetStatus(status)
	}
}
