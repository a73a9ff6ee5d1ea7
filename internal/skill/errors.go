package skill

import "fmt"

// LoadError represents a failure to read or parse one skill's SKILL.md.
type LoadError struct {
	Dir string // Skill directory that failed to load
	Err error  // Underlying error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading skill %s: %v", e.Dir, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
