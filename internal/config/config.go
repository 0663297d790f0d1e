// Package config defines playrank configuration and its loading.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - Failures are reported with this package's sentinel errors.
package config

// DefaultMinCount is the minimum number of ranked rows in a report.
const DefaultMinCount = 10

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// MinCount is the minimum number of ranked rows before the cutoff applies.
	MinCount int `koanf:"min_count" validate:"min=0"`

	// Delimiter separates play-log fields. A single character.
	Delimiter string `koanf:"delimiter" validate:"len=1"`

	// SkipHeader drops the first play-log record.
	SkipHeader bool `koanf:"skip_header"`

	// MetricsTextfile, when set, receives run metrics in Prometheus text format.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:   "info",
		MinCount:   DefaultMinCount,
		Delimiter:  ",",
		SkipHeader: true,
	}
}

// Comma returns the delimiter as a rune.
func (c *Config) Comma() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}
