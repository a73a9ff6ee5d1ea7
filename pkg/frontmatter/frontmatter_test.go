package frontmatter

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "single key",
			input: "---\nname: foo\n---\n",
			want:  map[string]string{"name": "foo"},
		},
		{
			name:  "dash list continuation",
			input: "---\ntags:\n  - a\n  - b\n---\n",
			want:  map[string]string{"tags": "- a\n- b"},
		},
		{
			name:  "continuation appended to inline value",
			input: "---\ndescription: first line\n  second line\n\tthird line\n---\n",
			want:  map[string]string{"description": "first line\nsecond line\nthird line"},
		},
		{
			name:  "no opening delimiter",
			input: "# Title\nname: foo\n",
			want:  map[string]string{},
		},
		{
			name:  "partial delimiter",
			input: "--\nname: foo\n--\n",
			want:  map[string]string{},
		},
		{
			name:  "no closing delimiter",
			input: "---\nname: unclosed\n",
			want:  map[string]string{},
		},
		{
			name:  "delimiters with surrounding whitespace",
			input: "  ---  \nname: padded\n\t---\n",
			want:  map[string]string{"name": "padded"},
		},
		{
			name:  "comments and blank lines skipped",
			input: "---\n# a comment\n\nname: foo\n   # indented comment\ndescription: bar\n---\n",
			want:  map[string]string{"name": "foo", "description": "bar"},
		},
		{
			name:  "line without colon skipped",
			input: "---\nbadline\nname: foo\n---\n",
			want:  map[string]string{"name": "foo"},
		},
		{
			name:  "continuation before any key ignored",
			input: "---\n  orphan\nname: foo\n---\n",
			want:  map[string]string{"name": "foo"},
		},
		{
			name:  "split at first colon only",
			input: "---\nurl: https://example.com:8080/path\n---\n",
			want:  map[string]string{"url": "https://example.com:8080/path"},
		},
		{
			name:  "repeated key overwrites",
			input: "---\nname: first\nname: second\n---\n",
			want:  map[string]string{"name": "second"},
		},
		{
			name:  "CRLF line endings",
			input: "---\r\nname: windows\r\ndescription: Uses CRLF\r\n---\r\n\r\nBody.\r\n",
			want:  map[string]string{"name": "windows", "description": "Uses CRLF"},
		},
		{
			name:  "content after closing delimiter ignored",
			input: "---\nname: foo\n---\nnot: metadata\n",
			want:  map[string]string{"name": "foo"},
		},
		{
			name:  "empty block",
			input: "---\n---\n",
			want:  map[string]string{},
		},
		{
			name:  "empty value",
			input: "---\nlicense:\n---\n",
			want:  map[string]string{"license": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input)
			if got == nil {
				t.Fatal("Extract() returned nil")
			}
			if !reflect.DeepEqual(got.ToMap(), tt.want) {
				t.Errorf("Extract() = %q, want %q", got.ToMap(), tt.want)
			}
		})
	}
}

func TestExtractStrict_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantReason  string
		wantText    string
		wantLine    int
		errContains string
	}{
		{
			name:        "empty input",
			input:       "",
			wantReason:  ReasonMissingOpening,
			wantLine:    0,
			errContains: "opening",
		},
		{
			name:        "no opening delimiter",
			input:       "name: foo\n---\n",
			wantReason:  ReasonMissingOpening,
			wantLine:    1,
			errContains: "opening",
		},
		{
			name:        "no closing delimiter",
			input:       "---\nname: foo\n",
			wantReason:  ReasonMissingClosing,
			wantLine:    2,
			errContains: "closing",
		},
		{
			name:        "line without colon",
			input:       "---\nbadline\n---\n",
			wantReason:  ReasonInvalidLine,
			wantText:    "badline",
			wantLine:    2,
			errContains: "invalid frontmatter line: badline",
		},
		{
			name:        "first violation wins",
			input:       "---\nname: ok\nfirst bad\nsecond bad\n---\n",
			wantReason:  ReasonInvalidLine,
			wantText:    "first bad",
			wantLine:    3,
			errContains: "first bad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractStrict(tt.input)
			if err == nil {
				t.Fatalf("ExtractStrict() = %v, want error", got.ToMap())
			}
			if got != nil {
				t.Errorf("ExtractStrict() returned partial map %v alongside error", got.ToMap())
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("errors.Is(err, ErrMalformed) = false for %v", err)
			}

			var me *MalformedError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MalformedError, got %T", err)
			}
			if me.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", me.Reason, tt.wantReason)
			}
			if me.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", me.Text, tt.wantText)
			}
			if me.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", me.Line, tt.wantLine)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestExtractStrict_OrphanContinuationIgnored(t *testing.T) {
	got, err := ExtractStrict("---\n  orphan\nname: foo\n---\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Len() != 1 || got.Value("name") != "foo" {
		t.Errorf("ExtractStrict() = %v, want {name: foo}", got.ToMap())
	}
}

func TestLenientAndStrictAgreeOnWellFormedInput(t *testing.T) {
	inputs := []string{
		"---\n---\n",
		"---\nname: foo\n---\n",
		"---\nname: pdf\ndescription: Work with PDF files\ntags: [pdf, docs]\n---\n# PDF\n",
		"---\ntags:\n  - a\n  - b\n# comment\n\nlicense: MIT\n---\n",
		"---\r\nname: crlf\r\n---\r\n",
		"---\n  orphan\nname: foo\n---",
	}

	for _, input := range inputs {
		lenientMap := Extract(input)
		strictMap, err := ExtractStrict(input)
		if err != nil {
			t.Errorf("ExtractStrict(%q) error = %v", input, err)
			continue
		}
		if !reflect.DeepEqual(lenientMap.Keys(), strictMap.Keys()) {
			t.Errorf("key order differs for %q: %v vs %v", input, lenientMap.Keys(), strictMap.Keys())
		}
		if !reflect.DeepEqual(lenientMap.ToMap(), strictMap.ToMap()) {
			t.Errorf("values differ for %q: %v vs %v", input, lenientMap.ToMap(), strictMap.ToMap())
		}
	}
}

func TestExtract_PreservesKeyOrder(t *testing.T) {
	m := Extract("---\nzeta: 1\nalpha: 2\nmid: 3\nalpha: 4\n---\n")

	want := []string{"zeta", "alpha", "mid"}
	if got := m.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := m.Value("alpha"); got != "4" {
		t.Errorf("Value(alpha) = %q, want %q", got, "4")
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    *Map
	}{
		{"empty", NewMap()},
		{"single", NewMap("name", "foo")},
		{"several keys", NewMap("name", "pdf", "description", "Work with PDFs", "license", "MIT")},
		{"inline list", NewMap("tags", "[a, b, c]")},
		{"multiline list", NewMap("name", "x", "tags", "- a\n- b")},
		{"multiline text", NewMap("description", "line one\nline two")},
		{"empty value", NewMap("license", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Format(tt.m, "# Body\n")

			for _, got := range []*Map{Extract(text), mustStrict(t, text)} {
				if !reflect.DeepEqual(got.Keys(), tt.m.Keys()) {
					t.Errorf("Keys() = %v, want %v\n%s", got.Keys(), tt.m.Keys(), text)
				}
				if !reflect.DeepEqual(got.ToMap(), tt.m.ToMap()) {
					t.Errorf("round trip = %q, want %q\n%s", got.ToMap(), tt.m.ToMap(), text)
				}
			}

			if body := Body(text); body != "\n# Body\n" {
				t.Errorf("Body() = %q, want %q", body, "\n# Body\n")
			}
		})
	}
}

func TestFormat(t *testing.T) {
	got := Format(NewMap("name", "pdf", "tags", "- a\n- b", "license", ""), "")
	want := "---\nname: pdf\ntags:\n  - a\n  - b\nlicense:\n---\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"body after block", "---\nname: foo\n---\n\n# Title\n", "\n# Title\n"},
		{"no body", "---\nname: foo\n---\n", ""},
		{"no trailing newline", "---\nname: foo\n---\nbody", "body"},
		{"no frontmatter", "# Just markdown\n", "# Just markdown\n"},
		{"unclosed", "---\nname: foo\n", "---\nname: foo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Body(tt.input); got != tt.want {
				t.Errorf("Body() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.md")
	if err := os.WriteFile(valid, []byte("---\nname: file-skill\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.md")
	if err := os.WriteFile(broken, []byte("---\nnot valid\n---\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("valid strict", func(t *testing.T) {
		m, err := ParseFile(valid, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Value("name") != "file-skill" {
			t.Errorf("name = %q, want %q", m.Value("name"), "file-skill")
		}
	})

	t.Run("malformed strict", func(t *testing.T) {
		_, err := ParseFile(broken, true)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
		if !strings.Contains(err.Error(), broken) {
			t.Errorf("error %q should name the file", err)
		}
	})

	t.Run("malformed lenient", func(t *testing.T) {
		m, err := ParseFile(broken, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Len() != 0 {
			t.Errorf("expected empty map, got %v", m.ToMap())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "nope.md"), false)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

func mustStrict(t *testing.T, text string) *Map {
	t.Helper()
	m, err := ExtractStrict(text)
	if err != nil {
		t.Fatalf("ExtractStrict() error = %v\n%s", err, text)
	}
	return m
}
