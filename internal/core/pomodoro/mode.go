package pomodoro

// Mode identifies which interval the countdown is running.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Next returns the mode entered after the current interval finishes.
func (mode Mode) Next() Mode {
	if mode == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

// Title returns a capitalised label for display.
func (mode Mode) Title() string {
	if mode == ModeBreak {
		return "Break"
	}
	return "Work"
}

// Snapshot is a read-only copy of the timer state.
type Snapshot struct {
	Mode      Mode
	Running   bool
	Remaining int
}
