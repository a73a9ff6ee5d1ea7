package frontmatter

import "strings"

// ParseList splits a frontmatter value into list items.
//
// A value wrapped in brackets is treated as an inline list ("[a, b, c]") even
// if it spans several lines; items are comma-separated, trimmed, and empty
// items dropped. Otherwise each non-blank line is one item, with a leading
// "- " removed when present. There is no support for nesting or escaped
// commas.
func ParseList(value string) []string {
	if value == "" {
		return nil
	}

	stripped := strings.TrimSpace(value)

	if strings.HasPrefix(stripped, "[") && strings.HasSuffix(stripped, "]") {
		inner := stripped[1 : len(stripped)-1]
		var items []string
		for _, part := range strings.Split(inner, ",") {
			if item := strings.TrimSpace(part); item != "" {
				items = append(items, item)
			}
		}
		return items
	}

	var items []string
	for _, line := range strings.Split(stripped, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "- "):
			items = append(items, strings.TrimSpace(line[2:]))
		case line != "":
			items = append(items, line)
		}
	}
	return items
}
