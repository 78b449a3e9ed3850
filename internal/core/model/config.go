package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidDuration indicates an interval outside (0, MaxDuration] or a
// restart delay outside [0, MaxDuration].
var ErrInvalidDuration = errors.New("invalid duration")

const (
	DefaultWork         = 25 * time.Minute
	DefaultBreak        = 5 * time.Minute
	DefaultRestartDelay = 10 * time.Second

	// MaxDuration caps every interval and the restart delay.
	MaxDuration = 24 * time.Hour
)

// TimerConfig holds the durations that drive a Pomodoro cycle.
type TimerConfig struct {
	Work         time.Duration
	Break        time.Duration
	RestartDelay time.Duration
}

// DefaultTimerConfig returns the built-in 25/5 cycle with a 10 second restart delay.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:         DefaultWork,
		Break:        DefaultBreak,
		RestartDelay: DefaultRestartDelay,
	}
}

// NewTimerConfig builds a config from whole minutes and seconds as entered by the user.
func NewTimerConfig(workMinutes, breakMinutes, restartDelaySeconds int) TimerConfig {
	return TimerConfig{
		Work:         Scale(workMinutes, time.Minute),
		Break:        Scale(breakMinutes, time.Minute),
		RestartDelay: Scale(restartDelaySeconds, time.Second),
	}
}

// Scale returns count units, saturating at the int64 bounds instead of
// wrapping, so oversized counts still fail Validate.
func Scale(count int, unit time.Duration) time.Duration {
	limit := int64(math.MaxInt64) / int64(unit)
	switch {
	case int64(count) > limit:
		return math.MaxInt64
	case int64(count) < -limit:
		return math.MinInt64
	}
	return time.Duration(count) * unit
}

// Validate reports whether the config can drive a countdown.
func (config TimerConfig) Validate() error {
	if config.Work <= 0 || config.Work > MaxDuration {
		return fmt.Errorf("work %s: %w", config.Work, ErrInvalidDuration)
	}
	if config.Break <= 0 || config.Break > MaxDuration {
		return fmt.Errorf("break %s: %w", config.Break, ErrInvalidDuration)
	}
	if config.RestartDelay < 0 || config.RestartDelay > MaxDuration {
		return fmt.Errorf("restart delay %s: %w", config.RestartDelay, ErrInvalidDuration)
	}
	return nil
}

// WorkMinutes returns the work interval in whole minutes.
func (config TimerConfig) WorkMinutes() int {
	return int(config.Work / time.Minute)
}

// BreakMinutes returns the break interval in whole minutes.
func (config TimerConfig) BreakMinutes() int {
	return int(config.Break / time.Minute)
}

// RestartDelaySeconds returns the restart delay in whole seconds.
func (config TimerConfig) RestartDelaySeconds() int {
	return int(config.RestartDelay / time.Second)
}
