package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalid is matched (errors.Is) by every ValidationErrors value.
var ErrInvalid = errors.New("invalid configuration")

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config key (e.g., "logging.level")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Is makes errors.Is(err, ErrInvalid) hold for any ValidationErrors.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrInvalid
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error", "off"}
}

// ValidLogFormats returns the list of valid log encodings
func ValidLogFormats() []string {
	return []string{"console", "json"}
}

// ValidFormats returns the list of valid graph formats
func ValidFormats() []string {
	return []string{"packed", "graph6"}
}

// Validate checks every field and returns all failures at once.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if c.Iterations < 1 {
		errs = append(errs, ValidationError{
			Field:   "iterations",
			Value:   c.Iterations,
			Message: "must be at least 1",
		})
	}
	if !slices.Contains(ValidFormats(), strings.ToLower(c.Format)) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Value:   c.Format,
			Message: fmt.Sprintf("must be one of %v", ValidFormats()),
		})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of %v", ValidLogLevels()),
		})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of %v", ValidLogFormats()),
		})
	}

	return errs
}
