package coordinator

import (
	"fmt"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/pomodoro"
)

const (
	MessageBreak = "Time to take a break!"
	MessageWork  = "Back to work!"
)

// Display renders the countdown and user notifications.
type Display interface {
	RenderTime(seconds int)
	// Notify shows message and calls onAcknowledged once the user dismisses it.
	Notify(message string, onAcknowledged func())
}

// Scheduler runs fn once after delay on the UI goroutine.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func())
}

// Status describes what the coordinator last rendered.
type Status struct {
	Mode       pomodoro.Mode
	Running    bool
	Restarting bool
	Seconds    int
}

// Options contains runtime options for Coordinator.
type Options struct {
	TickInterval time.Duration
	OnStatus     func(Status)
}

type phase int

const (
	phaseIdle phase = iota
	phaseTicking
	phaseNotifying
	phaseRestarting
)

// restartCountdown counts down the pause between two intervals.
type restartCountdown struct {
	remaining int
	onDone    func()
}

// Coordinator wires user actions to the timer state and drives the
// per-second update loop. All methods must run on the UI goroutine.
type Coordinator struct {
	state     *pomodoro.State
	display   Display
	scheduler Scheduler
	options   Options
	phase     phase
	restart   *restartCountdown
	shown     int
}

// New creates a Coordinator. The update loop is not scheduled until Start.
func New(state *pomodoro.State, display Display, scheduler Scheduler, options Options) *Coordinator {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Coordinator{
		state:     state,
		display:   display,
		scheduler: scheduler,
		options:   options,
		phase:     phaseIdle,
	}
}

// Refresh renders the current remaining time.
func (coordinator *Coordinator) Refresh() {
	coordinator.render(coordinator.state.Remaining())
}

// Start resumes the countdown and schedules the update loop if needed.
func (coordinator *Coordinator) Start() {
	coordinator.state.Start()
	if coordinator.phase == phaseIdle {
		coordinator.phase = phaseTicking
		coordinator.scheduler.AfterFunc(coordinator.options.TickInterval, coordinator.updateView)
	}
	coordinator.publish(coordinator.shown)
}

// Pause freezes the countdown. The update loop keeps firing without effect.
func (coordinator *Coordinator) Pause() {
	coordinator.state.Pause()
	coordinator.publish(coordinator.shown)
}

// Reset restores the duration of the current mode and renders it.
func (coordinator *Coordinator) Reset() {
	coordinator.state.Reset()
	coordinator.Refresh()
}

// Reconfigure applies new durations in whole minutes and seconds.
func (coordinator *Coordinator) Reconfigure(workMinutes, breakMinutes, restartDelaySeconds int) error {
	return coordinator.Apply(model.NewTimerConfig(workMinutes, breakMinutes, restartDelaySeconds))
}

// Apply replaces the timer durations and renders the reset countdown.
func (coordinator *Coordinator) Apply(config model.TimerConfig) error {
	if err := coordinator.state.Apply(config); err != nil {
		return fmt.Errorf("apply settings: %w", err)
	}
	if coordinator.phase != phaseRestarting {
		coordinator.Refresh()
	}
	return nil
}

// Config returns the durations currently in effect.
func (coordinator *Coordinator) Config() model.TimerConfig {
	return coordinator.state.Config()
}

// Snapshot returns the current timer state.
func (coordinator *Coordinator) Snapshot() pomodoro.Snapshot {
	return coordinator.state.Snapshot()
}

func (coordinator *Coordinator) updateView() {
	if !coordinator.state.Tick() {
		coordinator.render(coordinator.state.Remaining())
		coordinator.scheduler.AfterFunc(coordinator.options.TickInterval, coordinator.updateView)
		return
	}

	coordinator.phase = phaseNotifying
	coordinator.publish(coordinator.state.Remaining())
	coordinator.display.Notify(
		NotificationFor(coordinator.state.Mode().Next()),
		coordinator.beginRestart,
	)
}

func (coordinator *Coordinator) beginRestart() {
	if coordinator.phase != phaseNotifying {
		return
	}
	coordinator.phase = phaseRestarting
	coordinator.restart = &restartCountdown{
		remaining: coordinator.state.RestartDelay(),
		onDone:    coordinator.resumeNextInterval,
	}
	coordinator.stepRestart()
}

func (coordinator *Coordinator) stepRestart() {
	countdown := coordinator.restart
	if countdown == nil {
		return
	}
	if countdown.remaining > 0 {
		coordinator.render(countdown.remaining)
		countdown.remaining--
		coordinator.scheduler.AfterFunc(coordinator.options.TickInterval, coordinator.stepRestart)
		return
	}
	coordinator.restart = nil
	countdown.onDone()
}

func (coordinator *Coordinator) resumeNextInterval() {
	coordinator.state.SwitchMode()
	coordinator.state.Start()
	coordinator.phase = phaseTicking
	coordinator.updateView()
}

func (coordinator *Coordinator) render(seconds int) {
	coordinator.shown = seconds
	coordinator.display.RenderTime(seconds)
	coordinator.publish(seconds)
}

func (coordinator *Coordinator) publish(seconds int) {
	if coordinator.options.OnStatus == nil {
		return
	}
	snapshot := coordinator.state.Snapshot()
	coordinator.options.OnStatus(Status{
		Mode:       snapshot.Mode,
		Running:    snapshot.Running,
		Restarting: coordinator.phase == phaseRestarting || coordinator.phase == phaseNotifying,
		Seconds:    seconds,
	})
}

// NotificationFor returns the message announcing the given upcoming mode.
func NotificationFor(next pomodoro.Mode) string {
	if next == pomodoro.ModeBreak {
		return MessageBreak
	}
	return MessageWork
}
