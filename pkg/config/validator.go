package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// colorPattern accepts #rrggbb hex colors or plain color names.
var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[a-zA-Z]+)$`)

// ConfigValidator provides a fluent interface for validating
// configuration values. It collects all validation errors rather than
// failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

// RangeInt validates that an int field is within the specified range.
func (cv *ConfigValidator) RangeInt(field string, value, min, max int) *ConfigValidator {
	if value < min || value > max {
		cv.errors = append(cv.errors,
			fmt.Errorf("%s.%s: value %d is outside range [%d, %d]", cv.name, field, value, min, max))
	}
	return cv
}

// PositiveFloat validates that a float field is strictly positive.
func (cv *ConfigValidator) PositiveFloat(field string, value float64) *ConfigValidator {
	if value <= 0 {
		cv.errors = append(cv.errors,
			fmt.Errorf("%s.%s: value %g must be positive", cv.name, field, value))
	}
	return cv
}

// ColorMap validates that every entry maps a non-empty connection name
// to a hex color or color name.
func (cv *ConfigValidator) ColorMap(field string, colors map[string]string) *ConfigValidator {
	for conn, color := range colors {
		if conn == "" {
			cv.errors = append(cv.errors,
				fmt.Errorf("%s.%s: empty connection name", cv.name, field))
			continue
		}
		if !colorPattern.MatchString(color) {
			cv.errors = append(cv.errors,
				fmt.Errorf("%s.%s[%s]: %q is not a hex color or color name", cv.name, field, conn, color))
		}
	}
	return cv
}

// Result returns nil if no validation errors were collected, otherwise
// a single error joining all of them.
func (cv *ConfigValidator) Result() error {
	if len(cv.errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(cv.errors))
	for _, err := range cv.errors {
		msgs = append(msgs, err.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}
