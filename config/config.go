// Package config holds the lint configuration, loaded from an optional
// wflint.yaml file and WFLINT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	apivalidation "k8s.io/apimachinery/pkg/util/validation"
)

// Config is the effective lint configuration. The zero value is usable;
// every accessor applies its documented default.
type Config struct {
	// LogLevel is the logrus level name used by the CLI ("debug", "info",
	// "warn", "error"). Defaults to "info".
	LogLevel string `mapstructure:"logLevel"`

	// Strict controls whether parsing rejects unknown manifest fields.
	// Defaults to true.
	Strict *bool `mapstructure:"strict"`

	// AllowedImageRegistries restricts container images to the listed
	// registries. Empty means any registry is accepted.
	AllowedImageRegistries []string `mapstructure:"allowedImageRegistries"`

	// DefaultLabels are merged into the telemetry labels the transform
	// command attaches to container templates.
	DefaultLabels map[string]string `mapstructure:"defaultLabels"`
}

// GetLogLevel parses LogLevel, defaulting to info on empty or unparsable
// values.
func (c *Config) GetLogLevel() logrus.Level {
	if c == nil || c.LogLevel == "" {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// IsStrict reports whether unknown manifest fields should fail parsing.
func (c *Config) IsStrict() bool {
	if c == nil || c.Strict == nil {
		return true
	}
	return *c.Strict
}

// GetDefaultLabels returns a copy of the configured extra labels, never
// nil. Callers may mutate the result freely.
func (c *Config) GetDefaultLabels() map[string]string {
	labels := map[string]string{}
	if c == nil {
		return labels
	}
	for k, v := range c.DefaultLabels {
		labels[k] = v
	}
	return labels
}

// Sanitize rejects configured default labels whose keys or values do not
// comply with the k8s label conventions, so a bad config fails up front
// rather than producing manifests the orchestrator refuses.
func (c *Config) Sanitize() error {
	for k, v := range c.DefaultLabels {
		if msgs := apivalidation.IsQualifiedName(k); len(msgs) > 0 {
			return fmt.Errorf("default label key %q: %s", k, strings.Join(msgs, ", "))
		}
		if msgs := apivalidation.IsValidLabelValue(v); len(msgs) > 0 {
			return fmt.Errorf("default label value %q: %s", v, strings.Join(msgs, ", "))
		}
	}
	return nil
}

// Load reads the configuration from the given file, or from wflint.yaml in
// the working directory when path is empty. A missing default file is not
// an error. Environment variables prefixed WFLINT_ override file values
// for the scalar and list keys; defaultLabels can only come from the file.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WFLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unmarshal only consults the environment for keys viper already
	// knows about, so bind each key up front rather than relying on
	// AutomaticEnv.
	for _, key := range []string{"logLevel", "strict", "allowedImageRegistries"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("wflint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Sanitize(); err != nil {
		return nil, err
	}
	return &c, nil
}
