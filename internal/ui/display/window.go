package display

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	windowTitle       = "Pomodoro Timer"
	notificationTitle = "Notification"
	windowWidth       = 400
	windowHeight      = 300
)

var (
	backgroundColor = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}
	textColor       = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	statusColor     = color.NRGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}
)

// Actions defines handlers for the main window buttons.
type Actions struct {
	OnStart    func()
	OnPause    func()
	OnReset    func()
	OnSettings func()
}

// Window is the main timer window. It only lays out and formats;
// every button is forwarded to Actions.
type Window struct {
	window         fyne.Window
	actions        Actions
	timeLabel      *canvas.Text
	statusLabel    *canvas.Text
	startButton    *widget.Button
	pauseButton    *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
}

// New creates the main window. It is not shown until Show is called.
func New(app fyne.App, actions Actions) *Window {
	window := app.NewWindow(windowTitle)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText(windowTitle, textColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 18

	timeLabel := canvas.NewText(FormatTime(0), textColor)
	timeLabel.Alignment = fyne.TextAlignCenter
	timeLabel.TextSize = 48

	statusLabel := canvas.NewText("", statusColor)
	statusLabel.Alignment = fyne.TextAlignCenter
	statusLabel.TextSize = 12

	view := &Window{
		window:      window,
		actions:     actions,
		timeLabel:   timeLabel,
		statusLabel: statusLabel,
	}

	view.startButton = widget.NewButton("Start", func() {
		if view.actions.OnStart != nil {
			view.actions.OnStart()
		}
	})
	view.pauseButton = widget.NewButton("Pause", func() {
		if view.actions.OnPause != nil {
			view.actions.OnPause()
		}
	})
	view.resetButton = widget.NewButton("Reset", func() {
		if view.actions.OnReset != nil {
			view.actions.OnReset()
		}
	})
	view.settingsButton = widget.NewButton("Settings", func() {
		if view.actions.OnSettings != nil {
			view.actions.OnSettings()
		}
	})

	buttons := container.NewHBox(
		layout.NewSpacer(),
		view.startButton,
		view.pauseButton,
		view.resetButton,
		layout.NewSpacer(),
	)
	settings := container.NewHBox(layout.NewSpacer(), view.settingsButton, layout.NewSpacer())

	content := container.NewVBox(
		titleLabel,
		layout.NewSpacer(),
		timeLabel,
		statusLabel,
		layout.NewSpacer(),
		buttons,
		settings,
	)
	background := canvas.NewRectangle(backgroundColor)

	window.SetContent(container.NewStack(background, container.NewPadded(content)))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.SetMaster()

	return view
}

// SetActions replaces the button handlers.
func (view *Window) SetActions(actions Actions) {
	view.actions = actions
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
}

// ShowAndRun displays the window and runs the application event loop.
func (view *Window) ShowAndRun() {
	view.window.ShowAndRun()
}

// Window returns the underlying Fyne window, used as a dialog parent.
func (view *Window) Window() fyne.Window {
	return view.window
}

// RenderTime shows seconds in MM:SS form.
func (view *Window) RenderTime(seconds int) {
	view.timeLabel.Text = FormatTime(seconds)
	view.timeLabel.Refresh()
}

// Text returns the countdown currently displayed.
func (view *Window) Text() string {
	return view.timeLabel.Text
}

// SetStatus updates the caption under the countdown.
func (view *Window) SetStatus(status string) {
	if view.statusLabel.Text == status {
		return
	}
	view.statusLabel.Text = status
	view.statusLabel.Refresh()
}

// Notify shows a modal information dialog. onAcknowledged runs after the
// user closes it; the event loop keeps running in the meantime.
func (view *Window) Notify(message string, onAcknowledged func()) {
	info := dialog.NewInformation(notificationTitle, message, view.window)
	if onAcknowledged != nil {
		info.SetOnClosed(onAcknowledged)
	}
	info.Show()
	view.window.RequestFocus()
}
