package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ebenfield/chatkit/styles"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "list.max_messages")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
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

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns every
// validation error found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if !styles.IsValidTheme(c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Value:   c.UI.Theme,
			Message: fmt.Sprintf("unknown theme (valid: %s)", strings.Join(styles.ValidThemes(), ", ")),
		})
	}

	if c.List.MaxMessages < 0 {
		errs = append(errs, ValidationError{
			Field:   "list.max_messages",
			Value:   c.List.MaxMessages,
			Message: "must be zero or positive",
		})
	}

	if c.List.TimeFormat == "" {
		errs = append(errs, ValidationError{
			Field:   "list.time_format",
			Value:   c.List.TimeFormat,
			Message: "must not be empty",
		})
	} else if formatted := time.Now().Format(c.List.TimeFormat); formatted == c.List.TimeFormat &&
		!strings.ContainsAny(c.List.TimeFormat, "0123456789") {
		// A layout with no recognized reference elements renders as
		// itself; that is almost certainly a mistake.
		errs = append(errs, ValidationError{
			Field:   "list.time_format",
			Value:   c.List.TimeFormat,
			Message: "not a valid Go time layout",
		})
	}

	if c.Composer.CharLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "composer.char_limit",
			Value:   c.Composer.CharLimit,
			Message: "must be zero or positive",
		})
	}

	if c.Composer.MaxHeight < 1 {
		errs = append(errs, ValidationError{
			Field:   "composer.max_height",
			Value:   c.Composer.MaxHeight,
			Message: "must be at least 1",
		})
	}

	if c.Composer.HistorySize < 0 {
		errs = append(errs, ValidationError{
			Field:   "composer.history_size",
			Value:   c.Composer.HistorySize,
			Message: "must be zero or positive",
		})
	}

	if !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errs
}
