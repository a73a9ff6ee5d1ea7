package frontmatter

import "strings"

// Format renders m as a delimited frontmatter block followed by body.
// Single-line values are written as "key: value"; multi-line values are
// written under "key:" as indented continuation lines, which Extract
// reads back as the same value.
func Format(m *Map, body string) string {
	var sb strings.Builder
	sb.WriteString(delimiter + "\n")

	for _, k := range m.Keys() {
		v := m.values[k]
		switch {
		case v == "":
			sb.WriteString(k + ":\n")
		case strings.Contains(v, "\n"):
			sb.WriteString(k + ":\n")
			for _, line := range strings.Split(v, "\n") {
				sb.WriteString("  " + line + "\n")
			}
		default:
			sb.WriteString(k + ": " + v + "\n")
		}
	}

	sb.WriteString(delimiter + "\n")
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatList renders items in the inline bracketed form ParseList accepts.
func FormatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
