package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/solohq/soloist/internal/addrspec"
	"github.com/solohq/soloist/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "instance.name")
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

// nameRegex validates instance name and group characters. Both end up in
// socket filenames and abstract addresses, so they stay conservative:
// alphanumeric start, then alphanumeric, hyphen, underscore.
var nameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateInstance()...)
	errors = append(errors, c.validateListen()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateShell()...)

	return errors
}

// validateInstance validates the InstanceConfig
func (c *Config) validateInstance() []ValidationError {
	var errors []ValidationError

	if c.Instance.Name == "" {
		errors = append(errors, ValidationError{
			Field:   "instance.name",
			Value:   c.Instance.Name,
			Message: "must not be empty",
		})
	} else if !nameRegex.MatchString(c.Instance.Name) {
		errors = append(errors, ValidationError{
			Field:   "instance.name",
			Value:   c.Instance.Name,
			Message: "must start with a letter and contain only letters, digits, hyphens, and underscores",
		})
	}

	if c.Instance.Group != "" && !nameRegex.MatchString(c.Instance.Group) {
		errors = append(errors, ValidationError{
			Field:   "instance.group",
			Value:   c.Instance.Group,
			Message: "must start with a letter and contain only letters, digits, hyphens, and underscores",
		})
	}

	return errors
}

// validateListen validates the ListenConfig
func (c *Config) validateListen() []ValidationError {
	var errors []ValidationError

	if c.Listen.Spec != "" {
		if _, err := addrspec.Parse(c.Listen.Spec); err != nil {
			errors = append(errors, ValidationError{
				Field:   "listen.spec",
				Value:   c.Listen.Spec,
				Message: err.Error(),
			})
		}
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Level matching is case-insensitive, like the logger's own parsing
	if c.Logging.Level != "" && !slices.Contains(logging.ValidLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(logging.ValidLevels(), ", ")),
		})
	}

	return errors
}

// validateShell validates the ShellConfig
func (c *Config) validateShell() []ValidationError {
	var errors []ValidationError

	if c.Shell.EnvTimeoutMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "shell.env_timeout_ms",
			Value:   c.Shell.EnvTimeoutMs,
			Message: "must not be negative",
		})
	}

	return errors
}
