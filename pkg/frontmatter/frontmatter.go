package frontmatter

import (
	"strings"
	"unicode"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/pkg/fileutil"
)

const delimiter = "---"

// policy decides what a malformation means. A nil return lets parsing
// degrade (skip the line, or return an empty Map); a non-nil error aborts.
type policy func(*MalformedError) error

func lenient(*MalformedError) error { return nil }

func strict(e *MalformedError) error { return e }

// Extract parses the frontmatter block of text.
// Malformed input never fails: it yields an empty Map, and data lines
// without a colon are skipped.
func Extract(text string) *Map {
	m, _ := extract(text, lenient)
	return m
}

// ExtractStrict parses the frontmatter block of text and returns a
// *MalformedError for the first malformation found, scanning top to bottom.
// On well-formed input it returns exactly what Extract returns.
func ExtractStrict(text string) (*Map, error) {
	return extract(text, strict)
}

// ParseFile reads path and extracts its frontmatter with the requested policy.
func ParseFile(path string, strictMode bool) (*Map, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if !strictMode {
		return Extract(string(data)), nil
	}
	m, err := ExtractStrict(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return m, nil
}

func extract(text string, onMalformed policy) (*Map, error) {
	lines := splitLines(text)

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		err := onMalformed(&MalformedError{Line: min(len(lines), 1), Reason: ReasonMissingOpening})
		if err != nil {
			return nil, err
		}
		return NewMap(), nil
	}

	end := closingLine(lines)
	if end < 0 {
		if err := onMalformed(&MalformedError{Line: len(lines), Reason: ReasonMissingClosing}); err != nil {
			return nil, err
		}
		return NewMap(), nil
	}

	m := NewMap()
	var current string
	for i := 1; i < end; i++ {
		raw := lines[i]

		if strings.TrimSpace(raw) == "" || strings.HasPrefix(trimLeft(raw), "#") {
			continue
		}

		if raw[0] == ' ' || raw[0] == '\t' {
			// Continuations before any key have nothing to attach to.
			if current != "" {
				m.Set(current, appendLine(m.values[current], trimLeft(raw)))
			}
			continue
		}

		key, value, found := strings.Cut(raw, ":")
		if !found {
			if err := onMalformed(&MalformedError{Line: i + 1, Text: raw, Reason: ReasonInvalidLine}); err != nil {
				return nil, err
			}
			continue
		}

		current = strings.TrimSpace(key)
		m.Set(current, strings.TrimSpace(value))
	}

	return m, nil
}

// Body returns the content following the closing delimiter, or the whole
// text when it has no well-formed frontmatter block.
func Body(text string) string {
	lines := splitLines(text)
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return text
	}
	end := closingLine(lines)
	if end < 0 {
		return text
	}

	rest := lines[end+1:]
	if len(rest) == 0 {
		return ""
	}
	body := strings.Join(rest, "\n")
	if strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r") {
		body += "\n"
	}
	return body
}

// closingLine returns the index of the first delimiter line after the
// opening one, or -1.
func closingLine(lines []string) int {
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			return i
		}
	}
	return -1
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce a final empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// appendLine joins a continuation onto a value. A key declared with an
// empty value takes the first continuation line as-is.
func appendLine(value, line string) string {
	if value == "" {
		return line
	}
	return value + "\n" + line
}

func trimLeft(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
