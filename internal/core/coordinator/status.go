package coordinator

import "fmt"

// Label returns a short caption for the status line.
func (status Status) Label() string {
	if status.Restarting {
		next := status.Mode.Next().Title()
		if status.Seconds > 0 && !status.Running {
			return fmt.Sprintf("%s starts in %ds", next, status.Seconds)
		}
		return next + " is next"
	}
	if status.Running {
		return status.Mode.Title()
	}
	return status.Mode.Title() + " (paused)"
}
