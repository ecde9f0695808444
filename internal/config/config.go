// Package config loads cracken's small application configuration:
// a YAML file (optional) overridable by CRACKEN_* environment variables,
// read once at startup before any subcommand runs.
package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig holds the process-wide settings that are not mask/subcommand
// flags: output buffering and log rendering.
type AppConfig struct {
	LogFormat       string `yaml:"log_format"       env:"CRACKEN_LOG_FORMAT"`
	BufferSizeBytes int    `yaml:"buffer_size_bytes" env:"CRACKEN_BUFFER_SIZE_BYTES"`
}

// ParseFromFile loads the config from path (skipped if empty), applies
// environment overrides, fills defaults and validates the result.
func (c *AppConfig) ParseFromFile(path string) error {
	if path != "" {
		if err := decodeFile(path, c); err != nil {
			return errors.WithMessagef(err, "failed to parse app config file %q", path)
		}
	}

	if err := cleanenv.ReadEnv(c); err != nil {
		return errors.WithMessage(err, "failed to read app config from environment")
	}

	c.FillDefaults()

	if errs := c.Validate(); len(errs) != 0 {
		return errors.Errorf("failed to validate app config:\n%s", joinErrs(errs))
	}

	return nil
}

// FillDefaults fills unset fields with their default values.
func (c *AppConfig) FillDefaults() {
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}

	if c.BufferSizeBytes == 0 {
		c.BufferSizeBytes = 2 << 20
	}
}

// Validate reports every invalid field, rather than stopping at the first.
func (c *AppConfig) Validate() []error {
	var errs []error

	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, errors.Errorf("unknown log format: %s", c.LogFormat))
	}

	if c.BufferSizeBytes < 0 {
		errs = append(errs, errors.Errorf("buffer_size_bytes must be non-negative: %d", c.BufferSizeBytes))
	}

	return errs
}

func decodeFile(path string, c *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	if err := decoder.Decode(c); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func joinErrs(errs []error) string {
	out := ""

	for i, err := range errs {
		out += "- " + err.Error()

		if i != len(errs)-1 {
			out += "\n"
		}
	}

	return out
}
