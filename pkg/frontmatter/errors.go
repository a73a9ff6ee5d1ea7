package frontmatter

import (
	"fmt"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

// ErrMalformed is the sentinel wrapped by every strict parsing failure.
var ErrMalformed = errors.New("malformed frontmatter")

// Reasons reported by MalformedError.
const (
	ReasonMissingOpening = "missing frontmatter opening '---'"
	ReasonMissingClosing = "missing frontmatter closing '---'"
	ReasonInvalidLine    = "invalid frontmatter line"
)

// MalformedError describes the first malformation found by ExtractStrict.
type MalformedError struct {
	Line   int    // 1-based line number, 0 when the input has no lines
	Text   string // Offending raw line, empty for delimiter failures
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Text == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Text)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
