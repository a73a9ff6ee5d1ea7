// Package validator checks loaded skills against the metadata rules the CLI
// enforces: required fields, name format, and field lengths.
package validator

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/thoreinstein/skillmeta/internal/skill"
	"github.com/thoreinstein/skillmeta/internal/validator"
)

const (
	// maxNameLength is the maximum allowed length for skill names.
	maxNameLength = 64

	// maxDescriptionLength is the maximum allowed length for descriptions.
	maxDescriptionLength = 1024
)

// nameRegex validates skill names: lowercase alphanumeric, single hyphens allowed
// between segments, no start/end hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// DefaultRequired lists the fields required when no WithRequired option is given.
var DefaultRequired = []string{skill.KeyName, skill.KeyDescription}

// Option configures a Validator.
type Option func(*Validator)

// Validator validates loaded skills.
type Validator struct {
	required []string
	matchDir bool
}

// New creates a new Validator with the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		required: slices.Clone(DefaultRequired),
		matchDir: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithRequired replaces the set of required frontmatter fields.
func WithRequired(fields ...string) Option {
	return func(v *Validator) {
		v.required = slices.Clone(fields)
	}
}

// WithMatchDir toggles the warning for names that differ from the directory name.
func WithMatchDir(match bool) Option {
	return func(v *Validator) {
		v.matchDir = match
	}
}

// Validate checks s and returns the issues found.
func (v *Validator) Validate(s *skill.Skill) *validator.Result {
	result := validator.NewResult(s.Dir)

	for _, field := range v.required {
		value, ok := s.Metadata.Get(field)
		switch {
		case !ok:
			result.AddError(field, field+" is required", nil)
		case strings.TrimSpace(value) == "":
			result.AddError(field, field+" cannot be empty", nil)
		}
	}

	if name, ok := s.Metadata.Get(skill.KeyName); ok && name != "" {
		v.validateName(result, name, s.Dir)
	}

	if desc := s.Metadata.Value(skill.KeyDescription); utf8.RuneCountInString(desc) > maxDescriptionLength {
		result.AddError(skill.KeyDescription, "description exceeds maximum length of 1024 characters", nil)
	}

	return result
}

// LoadFailure converts a load error into a failed result for dir.
func LoadFailure(dir string, err error) *validator.Result {
	result := validator.NewResult(dir)
	result.Add(validator.Issue{
		Severity: validator.SeverityError,
		Message:  err.Error(),
		Context:  map[string]string{"file": skill.FilePath(dir)},
	})
	return result
}

func (v *Validator) validateName(result *validator.Result, name, dir string) {
	if utf8.RuneCountInString(name) > maxNameLength {
		result.AddError(skill.KeyName, "name exceeds maximum length of 64 characters", name)
	}

	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
			msg = "name cannot start or end with a hyphen"
		} else if strings.Contains(name, "--") {
			msg = "name cannot contain consecutive hyphens"
		} else if strings.ToLower(name) != name {
			msg = "name must be lowercase"
		}
		result.AddError(skill.KeyName, msg, name)
	}

	if v.matchDir {
		if base := filepath.Base(dir); base != name {
			result.Add(validator.Issue{
				Severity: validator.SeverityWarning,
				Field:    skill.KeyName,
				Message:  "skill name should match directory name",
				Value:    name,
				Context:  map[string]string{"directory": base},
			})
		}
	}
}
