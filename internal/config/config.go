// Package config loads the lifeboost settings file and applies environment
// overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lifeboost/internal/constants"
	"github.com/julianstephens/lifeboost/internal/storage"
	"github.com/julianstephens/lifeboost/internal/utils"
	"github.com/julianstephens/lifeboost/internal/validation"
)

type Config struct {
	Storage       string              `yaml:"storage"`
	Timezone      string              `yaml:"timezone"`
	Reminders     RemindersConfig     `yaml:"reminders"`
	Water         WaterConfig         `yaml:"water"`
	Notifications NotificationsConfig `yaml:"notifications"`
	MaxSuspension time.Duration       `yaml:"max_suspension"`
	Debug         bool                `yaml:"debug"`

	// ConnectionString comes only from the environment and is never written
	// back to the file.
	ConnectionString string `yaml:"-"`
}

type RemindersConfig struct {
	HydrationMinutes  int    `yaml:"hydration_interval_minutes"`
	Bedtime           string `yaml:"bedtime"`
	MeditationSeconds int    `yaml:"meditation_seconds"`
	WorkoutMinutes    int    `yaml:"workout_minutes"`
}

type WaterConfig struct {
	Goal float64 `yaml:"goal"`
}

type NotificationsConfig struct {
	Terminal  bool `yaml:"terminal"`
	Tray      bool `yaml:"tray"`
	PerMinute int  `yaml:"per_minute"`
}

func DefaultConfig() *Config {
	return &Config{
		Storage:  constants.DefaultConfigPath,
		Timezone: "Local",
		Reminders: RemindersConfig{
			HydrationMinutes:  constants.DefaultHydrationIntervalMin,
			Bedtime:           constants.DefaultBedtime,
			MeditationSeconds: constants.DefaultMeditationSec,
			WorkoutMinutes:    constants.DefaultWorkoutMin,
		},
		Water: WaterConfig{
			Goal: constants.DefaultWaterGoal,
		},
		Notifications: NotificationsConfig{
			Terminal:  true,
			Tray:      true,
			PerMinute: constants.DefaultNotificationsPerMin,
		},
		MaxSuspension: constants.DefaultMaxSuspension,
	}
}

// DefaultPath returns the settings file location, honouring LIFEBOOST_SETTINGS.
func DefaultPath() (string, error) {
	if p := os.Getenv(constants.EnvSettingsFile); p != "" {
		return storage.ExpandHome(p)
	}
	dir, err := storage.ExpandHome(constants.DefaultSettingsDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.SettingsFileName), nil
}

// Load reads path on top of the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadEnvFiles sources KEY=VALUE files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	var present []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides fields from LIFEBOOST_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(constants.EnvDBPath); ok && v != "" {
		c.Storage = v
	}
	if v, ok := os.LookupEnv(constants.EnvDBConnection); ok {
		c.ConnectionString = v
	}
	if v, ok := os.LookupEnv(constants.EnvTimezone); ok && v != "" {
		c.Timezone = v
	}
	if v, ok := os.LookupEnv(constants.EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.EnvDebug, err)
		}
		c.Debug = debug
	}
	return nil
}

// Validate checks every field against the input rules and reports all
// problems at once.
func (c *Config) Validate() error {
	var r validation.Result
	r.Check("timezone", validation.Timezone(c.Timezone))
	r.Check("reminders.hydration_interval_minutes", validation.PeriodMinutes(c.Reminders.HydrationMinutes))
	r.Check("reminders.bedtime", validation.Bedtime(c.Reminders.Bedtime))
	r.Check("reminders.meditation_seconds", validation.PeriodSeconds(c.Reminders.MeditationSeconds))
	r.Check("reminders.workout_minutes", validation.PeriodMinutes(c.Reminders.WorkoutMinutes))
	r.Check("water.goal", validation.Goal(c.Water.Goal))
	if c.Notifications.PerMinute < 0 {
		r.Check("notifications.per_minute", fmt.Errorf("%w: must not be negative", validation.ErrInvalid))
	}
	if c.MaxSuspension <= 0 {
		r.Check("max_suspension", fmt.Errorf("%w: must be a positive duration", validation.ErrInvalid))
	}
	return r.Err()
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return utils.LoadLocation(c.Timezone)
}
