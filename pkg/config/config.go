// Package config loads and validates the routing core's tunables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/copperline/meshroute/pkg/section"
	"github.com/copperline/meshroute/pkg/solver"
)

// validate is a singleton validator instance
var validate = validator.New()

// Config is the externally supplied configuration for the routing core.
// Colors are cosmetic per-connection display colors.
type Config struct {
	MaxIterations int               `yaml:"max_iterations" validate:"min=1"`
	HopRadius     int               `yaml:"hop_radius" validate:"min=1,max=64"`
	PortSpacing   float64           `yaml:"port_spacing" validate:"gt=0"`
	MaxExpansions int               `yaml:"max_expansions" validate:"min=1"`
	LogLevel      string            `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Colors        map[string]string `yaml:"colors"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	hyper := section.DefaultHyperParameters()
	return Config{
		MaxIterations: solver.DefaultMaxIterations,
		HopRadius:     hyper.HopRadius,
		PortSpacing:   hyper.PortSpacing,
		MaxExpansions: hyper.MaxExpansions,
		LogLevel:      "info",
	}
}

// Load reads and validates a YAML config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals and validates YAML config bytes. Fields absent from
// the document keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks struct tags first, then the cross-field rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return NewConfigValidator("Config").
		ColorMap("Colors", c.Colors).
		Result()
}

// Hyper converts the config into the sub-solver hyperparameters.
func (c Config) Hyper() section.HyperParameters {
	return section.HyperParameters{
		HopRadius:     c.HopRadius,
		PortSpacing:   c.PortSpacing,
		MaxExpansions: c.MaxExpansions,
	}
}

// formatValidationError converts validator errors to a friendlier form
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	for _, e := range validationErrs {
		return fmt.Errorf("Config.%s: failed %q validation (value %v)", e.Field(), e.Tag(), e.Value())
	}
	return err
}
