// Package config loads the planisphere configuration from a YAML file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata" // observers name zones on hosts without a zoneinfo database

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/litescript/ls-planisphere/internal/astro"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// EnvPrefix prefixes every environment variable read by the loader, for
// example LSP_OBSERVER_LAT.
const EnvPrefix = "LSP"

// Refresh bounds. Values outside are clamped rather than rejected.
const (
	DefaultRefresh = 30 * time.Second
	MinRefresh     = 1 * time.Second
	MaxRefresh     = 10 * time.Minute
)

// Config is the complete application configuration.
type Config struct {
	Observer ObserverConfig `yaml:"observer" mapstructure:"observer"`
	View     ViewConfig     `yaml:"view" mapstructure:"view"`
	Refresh  time.Duration  `yaml:"refresh" mapstructure:"refresh"`
	LogLevel string         `yaml:"log_level" mapstructure:"log_level"`
	// Schedule is a standard five-field cron spec for repeated summaries.
	// Empty means run once.
	Schedule string `yaml:"schedule" mapstructure:"schedule"`
}

// ObserverConfig places the observer on Earth.
type ObserverConfig struct {
	Name     string  `yaml:"name" mapstructure:"name"`
	Lat      float64 `yaml:"lat" mapstructure:"lat"`
	Lon      float64 `yaml:"lon" mapstructure:"lon"`
	TimeZone string  `yaml:"timezone" mapstructure:"timezone"`
}

// ViewConfig sets the initial viewing direction and field of view, all in
// degrees.
type ViewConfig struct {
	CenterAz    float64 `yaml:"center_az" mapstructure:"center_az"`
	CenterAlt   float64 `yaml:"center_alt" mapstructure:"center_alt"`
	FieldOfView float64 `yaml:"fov" mapstructure:"fov"`
}

// Default returns the configuration used when nothing else is set: an
// observer in Lausanne looking south.
func Default() Config {
	return Config{
		Observer: ObserverConfig{
			Name:     "Lausanne",
			Lat:      46.52,
			Lon:      6.57,
			TimeZone: "Europe/Zurich",
		},
		View: ViewConfig{
			CenterAz:    180,
			CenterAlt:   45,
			FieldOfView: 120,
		},
		Refresh:  DefaultRefresh,
		LogLevel: "info",
	}
}

// Validate checks every field and returns an error wrapping ErrInvalidConfig
// for the first one that is out of range.
func (c Config) Validate() error {
	if !astro.IsValidLatDeg(c.Observer.Lat) {
		return fmt.Errorf("%w: observer latitude %v° not in [-90, 90]", ErrInvalidConfig, c.Observer.Lat)
	}
	if !astro.IsValidLonDeg(c.Observer.Lon) {
		return fmt.Errorf("%w: observer longitude %v° not in [-180, 180)", ErrInvalidConfig, c.Observer.Lon)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Center(); err != nil {
		return fmt.Errorf("%w: view centre: %v", ErrInvalidConfig, err)
	}
	if c.View.FieldOfView <= 0 || c.View.FieldOfView >= 360 {
		return fmt.Errorf("%w: field of view %v° not in (0, 360)", ErrInvalidConfig, c.View.FieldOfView)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Schedule != "" {
		if _, err := cron.ParseStandard(c.Schedule); err != nil {
			return fmt.Errorf("%w: schedule %q: %v", ErrInvalidConfig, c.Schedule, err)
		}
	}
	return nil
}

// Where returns the observer position.
func (c Config) Where() (astro.Geographic, error) {
	return astro.NewGeographicDeg(c.Observer.Lon, c.Observer.Lat)
}

// Center returns the initial projection centre.
func (c Config) Center() (astro.Horizontal, error) {
	return astro.NewHorizontalDeg(c.View.CenterAz, c.View.CenterAlt)
}

// Location returns the observer's time zone. An empty name is UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Observer.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Observer.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.Observer.TimeZone, err)
	}
	return loc, nil
}

// ClampRefresh limits d to [MinRefresh, MaxRefresh]. Zero selects the
// default.
func ClampRefresh(d time.Duration) time.Duration {
	switch {
	case d == 0:
		return DefaultRefresh
	case d < MinRefresh:
		return MinRefresh
	case d > MaxRefresh:
		return MaxRefresh
	default:
		return d
	}
}

// DefaultDir returns $HOME/.ls-planisphere.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ls-planisphere"
	}
	return filepath.Join(home, ".ls-planisphere")
}

// NewViper returns a viper instance with defaults, the environment and the
// config file search path set up. A non-empty cfgFile replaces the search.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers every key of Default() so that environment
// variables are picked up by Unmarshal even when no file sets the key.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("observer.name", d.Observer.Name)
	v.SetDefault("observer.lat", d.Observer.Lat)
	v.SetDefault("observer.lon", d.Observer.Lon)
	v.SetDefault("observer.timezone", d.Observer.TimeZone)
	v.SetDefault("view.center_az", d.View.CenterAz)
	v.SetDefault("view.center_alt", d.View.CenterAlt)
	v.SetDefault("view.fov", d.View.FieldOfView)
	v.SetDefault("refresh", d.Refresh)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("schedule", d.Schedule)
}

// Load reads the config file if there is one, merges the environment and
// bound flags, then validates. A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Refresh = ClampRefresh(cfg.Refresh)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
