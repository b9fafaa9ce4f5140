package config

import (
	"os"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"

	"todo/internal/domain"
)

// Config holds all configuration options for the todo application
type Config struct {
	Decode      DecodeConfig
	Output      OutputConfig
	Date        DateConfig
	Application ApplicationConfig
}

// DecodeConfig holds record decoding configuration
type DecodeConfig struct {
	Strict bool `env:"TODO_DECODE_STRICT"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	Indent string `env:"TODO_OUTPUT_INDENT"`
}

// DateConfig holds the optional override of the current date
type DateConfig struct {
	Today string `env:"TODO_TODAY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Decode: DecodeConfig{
			Strict: true,
		},
		Output: OutputConfig{
			Indent: "  ",
		},
		Date: DateConfig{
			Today: "",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// DecodeOptions returns the record decoding options implied by the configuration
func (c *Config) DecodeOptions() []domain.DecodeOption {
	if c.Decode.Strict {
		return nil
	}
	return []domain.DecodeOption{domain.AllowUnknownFields()}
}

// Clock returns the date source for overdue checks. A configured date
// pins the clock; otherwise the system's local date is used.
func (c *Config) Clock() domain.Clock {
	if c.Date.Today == "" {
		return domain.SystemClock{}
	}
	d, err := civil.ParseDate(c.Date.Today)
	if err != nil {
		// Validate rejects this, so only an unvalidated config gets here.
		return domain.SystemClock{}
	}
	return domain.FixedClock{Date: d}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if strict := os.Getenv("TODO_DECODE_STRICT"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			c.Decode.Strict = b
		}
	}

	if indent, ok := os.LookupEnv("TODO_OUTPUT_INDENT"); ok {
		c.Output.Indent = indent
	}

	if today := os.Getenv("TODO_TODAY"); today != "" {
		c.Date.Today = today
	}

	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if strings.Trim(c.Output.Indent, " \t") != "" {
		return &ConfigError{Field: "output.indent", Message: "indent may only contain spaces and tabs"}
	}

	if c.Date.Today != "" {
		if _, err := civil.ParseDate(c.Date.Today); err != nil {
			return &ConfigError{Field: "date.today", Message: "today must be a date in YYYY-MM-DD format"}
		}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
