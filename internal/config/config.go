// Package config loads the configuration of the calendar command-line tool.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/catalog"
	"github.com/reugn/go-calendar/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the calendar tool configuration.
type Config struct {
	// Location is the IANA name of the location used for moments given
	// without an offset, e.g. "Europe/Berlin".
	Location string `yaml:"location"`

	// MaxYear bounds the years operated on, 0 selects calendar.DefaultMaxYear.
	MaxYear int `yaml:"max_year"`

	// Catalog is the path of a YAML error-code catalog.
	Catalog string `yaml:"catalog"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error, off
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Location: "UTC",
		MaxYear:  calendar.DefaultMaxYear,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. An empty path or a missing file
// yields the defaults. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if loc := os.Getenv("CALENDAR_LOCATION"); loc != "" {
		c.Location = loc
	}
	if maxYear := os.Getenv("CALENDAR_MAX_YEAR"); maxYear != "" {
		value, err := strconv.Atoi(maxYear)
		if err != nil {
			return fmt.Errorf("invalid CALENDAR_MAX_YEAR: %w", err)
		}
		c.MaxYear = value
	}
	if path := os.Getenv("CALENDAR_CATALOG"); path != "" {
		c.Catalog = path
	}
	if level := os.Getenv("CALENDAR_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Location); err != nil {
		return fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	if c.MaxYear < 0 {
		return fmt.Errorf("invalid max year: %d", c.MaxYear)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %s (valid: json, console)", c.Logging.Format)
	}
	return nil
}

// CalendarOptions resolves the configuration into calendar options.
func (c *Config) CalendarOptions(l logger.Logger) (calendar.Options, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return calendar.Options{}, fmt.Errorf("invalid location %q: %w", c.Location, err)
	}
	cat := catalog.Default()
	if c.Catalog != "" {
		if cat, err = catalog.LoadFile(c.Catalog); err != nil {
			return calendar.Options{}, err
		}
	}
	return calendar.Options{
		Location: loc,
		MaxYear:  c.MaxYear,
		Catalog:  cat,
		Logger:   l,
	}, nil
}

// BuildLogger builds a zap logger writing to stderr. Verbose lowers the
// level to debug. The off level yields a no-op logger.
func (c *LoggingConfig) BuildLogger(verbose bool) (*zap.Logger, error) {
	level, err := logger.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if verbose && level > logger.LevelDebug {
		level = logger.LevelDebug
	}
	if level >= logger.LevelOff {
		return zap.NewNop(), nil
	}

	config := zap.NewProductionConfig()
	if c.Format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapLevel(level))
	return config.Build()
}

// TraceEnabled reports whether the configured level is trace. Zap has no
// trace level, trace records are written at debug when enabled.
func (c *LoggingConfig) TraceEnabled() bool {
	level, err := logger.ParseLevel(c.Level)
	return err == nil && level <= logger.LevelTrace
}

func zapLevel(level logger.Level) zapcore.Level {
	switch {
	case level >= logger.LevelError:
		return zapcore.ErrorLevel
	case level >= logger.LevelWarn:
		return zapcore.WarnLevel
	case level >= logger.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
