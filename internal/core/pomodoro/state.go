package pomodoro

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
)

// State holds the countdown configuration and progress of a single timer.
// It is not safe for concurrent use; callers drive it from the UI goroutine.
type State struct {
	workSeconds         int
	breakSeconds        int
	restartDelaySeconds int
	remaining           int
	mode                Mode
	running             bool
}

// New creates a paused State in work mode.
func New(config model.TimerConfig) (*State, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new timer state: %w", err)
	}
	state := &State{mode: ModeWork}
	state.apply(config)
	return state, nil
}

// NewDefault creates a State with the built-in durations.
func NewDefault() *State {
	state, _ := New(model.DefaultTimerConfig())
	return state
}

// Start marks the countdown as running.
func (state *State) Start() {
	state.running = true
}

// Pause stops the countdown without touching the remaining time.
func (state *State) Pause() {
	state.running = false
}

// Reset stops the countdown and restores the duration of the current mode.
func (state *State) Reset() {
	state.running = false
	if state.mode == ModeBreak {
		state.remaining = state.breakSeconds
		return
	}
	state.remaining = state.workSeconds
}

// SwitchMode toggles between work and break and resets the countdown.
func (state *State) SwitchMode() {
	state.mode = state.mode.Next()
	state.Reset()
}

// Tick advances the countdown by one second.
// It returns true exactly when a running countdown is found at zero,
// in which case the timer stops.
func (state *State) Tick() bool {
	if !state.running {
		return false
	}
	if state.remaining > 0 {
		state.remaining--
		return false
	}
	state.running = false
	return true
}

// Reconfigure replaces the durations with whole minutes and seconds and resets.
func (state *State) Reconfigure(workMinutes, breakMinutes, restartDelaySeconds int) error {
	return state.Apply(model.NewTimerConfig(workMinutes, breakMinutes, restartDelaySeconds))
}

// Apply replaces the durations and resets. An invalid config leaves the state unchanged.
func (state *State) Apply(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("reconfigure timer: %w", err)
	}
	state.apply(config)
	return nil
}

func (state *State) apply(config model.TimerConfig) {
	state.workSeconds = int(config.Work / time.Second)
	state.breakSeconds = int(config.Break / time.Second)
	state.restartDelaySeconds = int(config.RestartDelay / time.Second)
	state.Reset()
}

// Mode returns the current interval kind.
func (state *State) Mode() Mode {
	return state.mode
}

// Running reports whether Tick decrements the countdown.
func (state *State) Running() bool {
	return state.running
}

// Remaining returns the seconds left in the current interval.
func (state *State) Remaining() int {
	return state.remaining
}

// RestartDelay returns the pause in seconds between intervals.
func (state *State) RestartDelay() int {
	return state.restartDelaySeconds
}

// Config returns the durations currently in effect.
func (state *State) Config() model.TimerConfig {
	return model.TimerConfig{
		Work:         time.Duration(state.workSeconds) * time.Second,
		Break:        time.Duration(state.breakSeconds) * time.Second,
		RestartDelay: time.Duration(state.restartDelaySeconds) * time.Second,
	}
}

// Snapshot copies the observable state.
func (state *State) Snapshot() Snapshot {
	return Snapshot{
		Mode:      state.mode,
		Running:   state.running,
		Remaining: state.remaining,
	}
}
