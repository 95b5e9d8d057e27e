package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ScheduleConfig holds the planning environment: the daily work window
// and the peak-energy window, as whole hours of day.
type ScheduleConfig struct {
	WorkStartHour int `mapstructure:"work_start_hour" yaml:"work_start_hour"`
	WorkEndHour   int `mapstructure:"work_end_hour" yaml:"work_end_hour"`
	PeakStartHour int `mapstructure:"peak_start_hour" yaml:"peak_start_hour"`
	PeakEndHour   int `mapstructure:"peak_end_hour" yaml:"peak_end_hour"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// DatabasePath is the SQLite file location. Empty means the
	// default path next to the config file.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	Schedule ScheduleConfig `mapstructure:"schedule" yaml:"schedule"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
}

// Settings converts the configured schedule into planner settings.
func (c *AppConfig) Settings() Settings {
	return Settings{
		WorkStartHour: c.Schedule.WorkStartHour,
		WorkEndHour:   c.Schedule.WorkEndHour,
		PeakStartHour: c.Schedule.PeakStartHour,
		PeakEndHour:   c.Schedule.PeakEndHour,
	}
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/dayflow/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "dayflow", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	def := DefaultSettings()
	return &AppConfig{
		Schedule: ScheduleConfig{
			WorkStartHour: def.WorkStartHour,
			WorkEndHour:   def.WorkEndHour,
			PeakStartHour: def.PeakStartHour,
			PeakEndHour:   def.PeakEndHour,
		},
		Display: DisplayConfig{Theme: "default"},
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper. If the file does not exist, it returns a default
// configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	def := DefaultSettings()
	v.SetDefault("schedule.work_start_hour", def.WorkStartHour)
	v.SetDefault("schedule.work_end_hour", def.WorkEndHour)
	v.SetDefault("schedule.peak_start_hour", def.PeakStartHour)
	v.SetDefault("schedule.peak_end_hour", def.PeakEndHour)
	v.SetDefault("display.theme", "default")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("database_path", cfg.DatabasePath)
	v.Set("schedule", cfg.Schedule)
	v.Set("display", cfg.Display)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
