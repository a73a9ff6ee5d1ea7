// Package frontmatter reads the flat key/value metadata block at the top of
// SKILL.md files without a full YAML parser.
//
// A block is delimited by a first line containing only "---" and the next
// line containing only "---" (surrounding whitespace is ignored). Each line
// in between is one of:
//
//   - blank, or a comment starting with "#": ignored
//   - a continuation starting with a space or tab: appended, newline-joined,
//     to the value of the most recent key
//   - "key: value": split at the first colon, both sides trimmed
//
// Nested mappings, type coercion, anchors and multi-document files are not
// supported. Values are always strings; list-shaped values are split on
// demand with [ParseList].
//
// # Lenient and Strict Parsing
//
// [Extract] never fails: a missing delimiter yields an empty [Map] and lines
// without a colon are skipped. [ExtractStrict] runs the same algorithm but
// stops at the first malformation with a [*MalformedError]:
//
//	meta, err := frontmatter.ExtractStrict(text)
//	if errors.Is(err, frontmatter.ErrMalformed) {
//		// report and skip this skill
//	}
//
// # Lists
//
// Both inline and dash-prefixed lists are accepted:
//
//	tags: [pdf, documents]
//
//	tags:
//	  - pdf
//	  - documents
//
//	frontmatter.ParseList(meta.Value("tags")) // []string{"pdf", "documents"}
package frontmatter
