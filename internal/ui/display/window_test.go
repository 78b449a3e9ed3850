package display

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowButtonsForwardActions(t *testing.T) {
	app := test.NewTempApp(t)
	var calls []string
	view := New(app, Actions{
		OnStart:    func() { calls = append(calls, "start") },
		OnPause:    func() { calls = append(calls, "pause") },
		OnReset:    func() { calls = append(calls, "reset") },
		OnSettings: func() { calls = append(calls, "settings") },
	})

	test.Tap(view.startButton)
	test.Tap(view.pauseButton)
	test.Tap(view.resetButton)
	test.Tap(view.settingsButton)

	assert.Equal(t, []string{"start", "pause", "reset", "settings"}, calls)
}

func TestWindowIgnoresMissingActions(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, Actions{})

	assert.NotPanics(t, func() {
		test.Tap(view.startButton)
		test.Tap(view.settingsButton)
	})
}

func TestWindowRenderTime(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, Actions{})

	assert.Equal(t, "00:00", view.Text())
	view.RenderTime(90)
	assert.Equal(t, "01:30", view.Text())

	view.SetStatus("Work")
	assert.Equal(t, "Work", view.statusLabel.Text)
}

func TestWindowProperties(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, Actions{})

	assert.Equal(t, "Pomodoro Timer", view.Window().Title())
	assert.True(t, view.Window().FixedSize())
}

func TestWindowNotifyRunsCallbackOnDismiss(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, Actions{})
	view.Show()
	var acknowledged atomic.Bool

	view.Notify("Time to take a break!", func() { acknowledged.Store(true) })

	overlay := view.Window().Canvas().Overlays().Top()
	require.NotNil(t, overlay)
	texts := collectTexts(overlay)
	assert.Contains(t, texts, "Notification")
	assert.Contains(t, texts, "Time to take a break!")
	assert.False(t, acknowledged.Load())

	dismiss := findButton(overlay, "OK")
	require.NotNil(t, dismiss, "dismiss button not found")
	test.Tap(dismiss)

	assert.Eventually(t, acknowledged.Load, time.Second, 10*time.Millisecond)
}

// walk visits obj and every object rendered beneath it.
func walk(obj fyne.CanvasObject, visit func(fyne.CanvasObject)) {
	visit(obj)
	switch typed := obj.(type) {
	case *fyne.Container:
		for _, child := range typed.Objects {
			walk(child, visit)
		}
	case fyne.Widget:
		for _, child := range test.WidgetRenderer(typed).Objects() {
			walk(child, visit)
		}
	}
}

func collectTexts(obj fyne.CanvasObject) []string {
	var texts []string
	walk(obj, func(child fyne.CanvasObject) {
		switch typed := child.(type) {
		case *widget.Label:
			texts = append(texts, typed.Text)
		case *widget.RichText:
			texts = append(texts, typed.String())
		case *canvas.Text:
			texts = append(texts, typed.Text)
		}
	})
	return texts
}

func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	var found *widget.Button
	walk(obj, func(child fyne.CanvasObject) {
		if button, ok := child.(*widget.Button); ok && found == nil && button.Text == text {
			found = button
		}
	})
	return found
}
