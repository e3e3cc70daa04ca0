package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/riordanpawley/vrhud/internal/domain"
	"github.com/riordanpawley/vrhud/internal/fade"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/tween"
)

// FileName is the per-project config file
const FileName = ".vrhud.json"

// EnvPrefix prefixes every environment override, e.g. VRHUD_NOTIFY_MAX
const EnvPrefix = "VRHUD_"

// Config represents the full overlay configuration
type Config struct {
	Menu          MenuConfig   `json:"menu" envPrefix:"MENU_"`
	Notifications NotifyConfig `json:"notifications" envPrefix:"NOTIFY_"`
	Host          HostConfig   `json:"host" envPrefix:"HOST_"`
	Log           LogConfig    `json:"log" envPrefix:"LOG_"`
}

// MenuConfig contains the settings menu animation settings
type MenuConfig struct {
	DurationMs    int     `json:"durationMs" env:"DURATION_MS"`
	TargetScale   float64 `json:"targetScale" env:"TARGET_SCALE"`
	RestartPolicy string  `json:"restartPolicy" env:"RESTART_POLICY"`
	ToggleKey     string  `json:"toggleKey" env:"TOGGLE_KEY"`
}

// NotifyConfig contains notification queue and fade settings.
// A zero value in the file means the default; the VRHUD_NOTIFY_* variables
// are applied after defaults, so VRHUD_NOTIFY_ALPHA_STEP=0 or
// VRHUD_NOTIFY_FONT_SIZE_STEP=0 turns that decay off.
type NotifyConfig struct {
	MaxNotifications int     `json:"maxNotifications" env:"MAX"`
	LifetimeMs       int     `json:"lifetimeMs" env:"LIFETIME_MS"`
	BaseFontSize     int     `json:"baseFontSize" env:"BASE_FONT_SIZE"`
	FontSizeStep     int     `json:"fontSizeStep" env:"FONT_SIZE_STEP"`
	MinFontSize      int     `json:"minFontSize" env:"MIN_FONT_SIZE"`
	AlphaStep        float64 `json:"alphaStep" env:"ALPHA_STEP"`
	FadeInMs         int     `json:"fadeInMs" env:"FADE_IN_MS"`
	FadeOutMs        int     `json:"fadeOutMs" env:"FADE_OUT_MS"`
}

// HostConfig contains settings for the terminal host
type HostConfig struct {
	FrameRate int `json:"frameRate" env:"FRAME_RATE"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `json:"level" env:"LEVEL"`
	Format string `json:"format" env:"FORMAT"`
	File   string `json:"file" env:"FILE"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Menu: MenuConfig{
			DurationMs:    250,
			TargetScale:   1,
			RestartPolicy: tween.RestartFromCurrent.String(),
			ToggleKey:     "m",
		},
		Notifications: NotifyConfig{
			MaxNotifications: 5,
			LifetimeMs:       5000,
			BaseFontSize:     32,
			FontSizeStep:     4,
			MinFontSize:      16,
			AlphaStep:        0.15,
			FadeInMs:         200,
			FadeOutMs:        400,
		},
		Host: HostConfig{
			FrameRate: 60,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(homeDir, ".vrhud", "vrhud.log"),
		},
	}
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// Merge Menu config
	if cfg.Menu.DurationMs == 0 {
		cfg.Menu.DurationMs = defaults.Menu.DurationMs
	}
	if cfg.Menu.TargetScale == 0 {
		cfg.Menu.TargetScale = defaults.Menu.TargetScale
	}
	if cfg.Menu.RestartPolicy == "" {
		cfg.Menu.RestartPolicy = defaults.Menu.RestartPolicy
	}
	if cfg.Menu.ToggleKey == "" {
		cfg.Menu.ToggleKey = defaults.Menu.ToggleKey
	}

	// Merge Notifications config
	n, d := &cfg.Notifications, defaults.Notifications
	if n.MaxNotifications == 0 {
		n.MaxNotifications = d.MaxNotifications
	}
	if n.LifetimeMs == 0 {
		n.LifetimeMs = d.LifetimeMs
	}
	if n.BaseFontSize == 0 {
		n.BaseFontSize = d.BaseFontSize
	}
	if n.FontSizeStep == 0 {
		n.FontSizeStep = d.FontSizeStep
	}
	if n.MinFontSize == 0 {
		n.MinFontSize = d.MinFontSize
	}
	if n.AlphaStep == 0 {
		n.AlphaStep = d.AlphaStep
	}
	if n.FadeInMs == 0 {
		n.FadeInMs = d.FadeInMs
	}
	if n.FadeOutMs == 0 {
		n.FadeOutMs = d.FadeOutMs
	}

	// Merge Host config
	if cfg.Host.FrameRate == 0 {
		cfg.Host.FrameRate = defaults.Host.FrameRate
	}

	// Merge Log config
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}

	return cfg
}

// Validate rejects values the overlay cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, field, msg string) {
		if !ok {
			errs = append(errs, &domain.ConfigError{Field: field, Err: errors.New(msg)})
		}
	}

	check(c.Menu.DurationMs >= 0, "menu.durationMs", "must not be negative")
	check(c.Menu.TargetScale > 0, "menu.targetScale", "must be positive")
	check(c.Menu.RestartPolicy == "current" || c.Menu.RestartPolicy == "endpoint",
		"menu.restartPolicy", `must be "current" or "endpoint"`)
	check(c.Notifications.MaxNotifications > 0, "notifications.maxNotifications", "must be positive")
	check(c.Notifications.LifetimeMs > 0, "notifications.lifetimeMs", "must be positive")
	check(c.Notifications.MinFontSize > 0, "notifications.minFontSize", "must be positive")
	check(c.Notifications.BaseFontSize >= c.Notifications.MinFontSize,
		"notifications.baseFontSize", "must not be below minFontSize")
	check(c.Notifications.FontSizeStep >= 0, "notifications.fontSizeStep", "must not be negative")
	check(c.Notifications.AlphaStep >= 0, "notifications.alphaStep", "must not be negative")
	check(c.Notifications.FadeInMs >= 0 && c.Notifications.FadeOutMs >= 0,
		"notifications.fade", "durations must not be negative")
	check(c.Host.FrameRate > 0 && c.Host.FrameRate <= 240, "host.frameRate", "must be between 1 and 240")

	return errors.Join(errs...)
}

// AnimatorOptions converts the menu settings for the scale animator
func (c MenuConfig) AnimatorOptions() tween.AnimatorOptions {
	opts := tween.DefaultAnimatorOptions()
	opts.Duration = time.Duration(c.DurationMs) * time.Millisecond
	opts.TargetValue = c.TargetScale
	opts.Restart = tween.ParseRestartPolicy(c.RestartPolicy)
	return opts
}

// QueueOptions converts the notification settings for the queue
func (c NotifyConfig) QueueOptions() notify.Options {
	return notify.Options{
		MaxNotifications: c.MaxNotifications,
		Lifetime:         time.Duration(c.LifetimeMs) * time.Millisecond,
		BaseFontSize:     c.BaseFontSize,
		FontSizeStep:     c.FontSizeStep,
		MinFontSize:      c.MinFontSize,
		AlphaStep:        c.AlphaStep,
	}
}

// FadeOptions converts the notification settings for the fade controller
func (c NotifyConfig) FadeOptions() fade.Options {
	return fade.Options{
		FadeInDuration:  time.Duration(c.FadeInMs) * time.Millisecond,
		FadeOutDuration: time.Duration(c.FadeOutMs) * time.Millisecond,
	}
}

// FrameInterval returns the duration of one host frame
func (c HostConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

var dotenvLoaded sync.Once

// ApplyEnv overrides cfg with VRHUD_* environment variables.
// A .env file in the working directory is read once if present.
func ApplyEnv(cfg *Config) error {
	dotenvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return &domain.ConfigError{Field: "env", Err: err}
	}
	return nil
}

// LoadConfig loads configuration from project path with priority:
// 1. VRHUD_* environment variables (and .env)
// 2. .vrhud.json in project root (with version migration support)
// 3. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	return LoadFile(filepath.Join(projectPath, FileName))
}

// LoadFile loads configuration from an explicit file path. A missing file
// yields defaults plus environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		cfg = MergeWithDefaults(parsed)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
