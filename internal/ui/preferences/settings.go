package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"pomodoro/internal/core/model"
)

var (
	// ErrNotInteger reports a field that does not hold a whole number.
	ErrNotInteger = errors.New("settings field is not an integer")
	// ErrOutOfRange reports an interval or restart delay outside the accepted range.
	ErrOutOfRange = errors.New("settings duration out of range")
)

// Dialog texts shown for rejected settings.
const (
	MessageNotInteger = "Please enter valid integers for times."
	MessageOutOfRange = "Work and break times must be 1 to 1440 minutes; restart delay must be 0 to 86400 seconds."
)

// UserMessage returns the dialog text for an error from ParseSettings or the save handler.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotInteger):
		return MessageNotInteger
	case errors.Is(err, ErrOutOfRange), errors.Is(err, model.ErrInvalidDuration):
		return MessageOutOfRange
	}
	return err.Error()
}

// Settings defines the values editable in the settings window.
type Settings struct {
	WorkMinutes         int
	BreakMinutes        int
	RestartDelaySeconds int
}

// SettingsFromConfig converts the active timer config to form values.
func SettingsFromConfig(config model.TimerConfig) Settings {
	return Settings{
		WorkMinutes:         config.WorkMinutes(),
		BreakMinutes:        config.BreakMinutes(),
		RestartDelaySeconds: config.RestartDelaySeconds(),
	}
}

// TimerConfig converts settings to a TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.NewTimerConfig(settings.WorkMinutes, settings.BreakMinutes, settings.RestartDelaySeconds)
}

// ParseSettings parses the raw text of the three fields.
func ParseSettings(work, breakTime, restartDelay string) (Settings, error) {
	var settings Settings
	var ok bool

	if settings.WorkMinutes, ok = parseInt(work); !ok {
		return Settings{}, ErrNotInteger
	}
	if settings.BreakMinutes, ok = parseInt(breakTime); !ok {
		return Settings{}, ErrNotInteger
	}
	if settings.RestartDelaySeconds, ok = parseInt(restartDelay); !ok {
		return Settings{}, ErrNotInteger
	}

	if err := settings.TimerConfig().Validate(); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return settings, nil
}

func parseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}
