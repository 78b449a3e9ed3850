package scheduler

import (
	"time"

	"fyne.io/fyne/v2"
)

// Fyne defers callbacks onto the Fyne UI goroutine, so code driven by it
// runs on the same thread as button handlers.
type Fyne struct{}

// New returns a scheduler backed by the running Fyne app.
func New() Fyne {
	return Fyne{}
}

// AfterFunc runs fn on the UI goroutine once delay has elapsed.
func (Fyne) AfterFunc(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
}
