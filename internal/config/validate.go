package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidField indicates a frontmatter key name that can never match.
	ErrInvalidField = errors.New("invalid field name")
)

// Validate checks a Config for validity.
// Returns nil if valid, or every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Platform != "" && !paths.ValidPlatform(cfg.Platform) {
		errs = append(errs, &FieldError{Field: "platform", Value: cfg.Platform, Err: ErrInvalidPlatform})
	}

	if err := validatePath(cfg.Root); err != nil {
		errs = append(errs, &FieldError{Field: "root", Value: cfg.Root, Err: err})
	}

	for _, list := range []struct {
		name   string
		fields []string
	}{
		{"required_fields", cfg.RequiredFields},
		{"list_fields", cfg.ListFields},
	} {
		for _, f := range list.fields {
			if err := validateField(f); err != nil {
				errs = append(errs, &FieldError{Field: list.name, Value: f, Err: err})
			}
		}
	}

	return errs
}

// validatePath checks that a path string is well-formed, not that it exists.
// Empty means "use default".
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	if filepath.Clean(path) == "" {
		return ErrInvalidPath
	}
	return nil
}

// validateField rejects keys the frontmatter parser could never produce.
func validateField(name string) error {
	if strings.TrimSpace(name) != name || name == "" || strings.Contains(name, ":") {
		return ErrInvalidField
	}
	return nil
}

// FieldError ties a validation error to a config field and its value.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
