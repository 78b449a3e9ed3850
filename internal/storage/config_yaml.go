package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomodoro/internal/core/model"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the start-up defaults file inside the app config dir.
// The application only reads it; settings changed at runtime are not written back.
const ConfigFileName = "pomodoro.yaml"

type yamlConfig struct {
	WorkMinutes         int  `yaml:"work_minutes"`
	BreakMinutes        int  `yaml:"break_minutes"`
	RestartDelaySeconds *int `yaml:"restart_delay_seconds"`
}

// LoadTimerConfig reads start-up durations for appName from the user config dir.
// If the file does not exist, default durations are returned.
func LoadTimerConfig(appName string) (model.TimerConfig, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return model.DefaultTimerConfig(), err
	}
	return LoadTimerConfigFile(configPath)
}

// LoadTimerConfigFile reads start-up durations from configPath.
// Fields that are missing or out of range keep their defaults.
func LoadTimerConfigFile(configPath string) (model.TimerConfig, error) {
	config := model.DefaultTimerConfig()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read config file: %w", err)
	}

	var fileData yamlConfig
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse config yaml: %w", err)
	}

	applyYamlConfig(&config, fileData)
	return config, nil
}

// ResolveConfigPath returns the defaults file location for appName.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, ConfigFileName), nil
}

func applyYamlConfig(config *model.TimerConfig, fileData yamlConfig) {
	if work := model.Scale(fileData.WorkMinutes, time.Minute); inRange(work) && work > 0 {
		config.Work = work
	}
	if breakTime := model.Scale(fileData.BreakMinutes, time.Minute); inRange(breakTime) && breakTime > 0 {
		config.Break = breakTime
	}
	if fileData.RestartDelaySeconds != nil {
		if delay := model.Scale(*fileData.RestartDelaySeconds, time.Second); inRange(delay) {
			config.RestartDelay = delay
		}
	}
}

func inRange(duration time.Duration) bool {
	return duration >= 0 && duration <= model.MaxDuration
}
