package preferences

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/model"
)

// Window handles the settings UI. Closing it without saving discards edits.
type Window struct {
	window       fyne.Window
	onSave       func(Settings) error
	showError    func(error)
	workEntry    *widget.Entry
	breakEntry   *widget.Entry
	restartEntry *widget.Entry
	saveButton   *widget.Button
	visible      bool
}

// New creates a settings window. onSave receives validated values; an error
// it returns is shown to the user and keeps the window open.
func New(app fyne.App, onSave func(Settings) error) *Window {
	window := app.NewWindow("Settings")

	workEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	restartEntry := widget.NewEntry()

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		workEntry:    workEntry,
		breakEntry:   breakEntry,
		restartEntry: restartEntry,
	}
	prefs.showError = func(err error) {
		dialog.ShowError(err, window)
	}
	prefs.saveButton = widget.NewButton("Save", prefs.handleSave)

	form := container.NewVBox(
		widget.NewLabel("Work Time (min):"),
		workEntry,
		widget.NewLabel("Break Time (min):"),
		breakEntry,
		widget.NewLabel("Restart Delay (sec):"),
		restartEntry,
	)
	content := container.NewBorder(nil, prefs.saveButton, nil, nil, form)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(300, 250))
	window.SetFixedSize(true)
	window.SetCloseIntercept(prefs.hide)

	return prefs
}

// Show fills the fields from config and displays the window.
func (prefs *Window) Show(config model.TimerConfig) {
	prefs.fill(SettingsFromConfig(config))
	prefs.visible = true
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Visible reports whether the window is open.
func (prefs *Window) Visible() bool {
	return prefs.visible
}

func (prefs *Window) fill(settings Settings) {
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.breakEntry.SetText(strconv.Itoa(settings.BreakMinutes))
	prefs.restartEntry.SetText(strconv.Itoa(settings.RestartDelaySeconds))
}

func (prefs *Window) handleSave() {
	settings, err := ParseSettings(prefs.workEntry.Text, prefs.breakEntry.Text, prefs.restartEntry.Text)
	if err != nil {
		prefs.reject(err)
		return
	}

	if prefs.onSave != nil {
		if err := prefs.onSave(settings); err != nil {
			prefs.reject(err)
			return
		}
	}
	prefs.hide()
}

func (prefs *Window) reject(err error) {
	prefs.showError(errors.New(UserMessage(err)))
}

func (prefs *Window) hide() {
	prefs.visible = false
	prefs.window.Hide()
}
