package skill

import (
	"path/filepath"
	"slices"

	"github.com/thoreinstein/skillmeta/pkg/frontmatter"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// Loader reads a skill directory's SKILL.md into a Skill.
type Loader struct {
	strict     bool
	listFields []string
}

// NewLoader creates a Loader. By default it parses leniently and splits the
// "tags" field as a list.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		listFields: []string{KeyTags},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// WithStrict makes Load fail on malformed frontmatter instead of treating it
// as empty.
func WithStrict(strict bool) LoaderOption {
	return func(l *Loader) {
		l.strict = strict
	}
}

// WithListFields sets which frontmatter keys are split with ParseList.
func WithListFields(fields ...string) LoaderOption {
	return func(l *Loader) {
		l.listFields = slices.Clone(fields)
	}
}

// Strict reports whether the loader parses in strict mode.
func (l *Loader) Strict() bool {
	return l.strict
}

// Load reads dir/SKILL.md.
func (l *Loader) Load(dir string) (*Skill, error) {
	meta, err := frontmatter.ParseFile(FilePath(dir), l.strict)
	if err != nil {
		return nil, &LoadError{Dir: dir, Err: err}
	}
	return l.build(dir, meta), nil
}

// FromText builds a Skill for dir from already-read SKILL.md content.
func (l *Loader) FromText(dir, text string) (*Skill, error) {
	if !l.strict {
		return l.build(dir, frontmatter.Extract(text)), nil
	}
	meta, err := frontmatter.ExtractStrict(text)
	if err != nil {
		return nil, &LoadError{Dir: dir, Err: err}
	}
	return l.build(dir, meta), nil
}

func (l *Loader) build(dir string, meta *frontmatter.Map) *Skill {
	name := meta.Value(KeyName)
	if name == "" {
		name = filepath.Base(dir)
	}

	lists := make(map[string][]string, len(l.listFields))
	for _, field := range l.listFields {
		if v, ok := meta.Get(field); ok {
			lists[field] = frontmatter.ParseList(v)
		}
	}

	return &Skill{
		Dir:         dir,
		Name:        name,
		Description: meta.Value(KeyDescription),
		Metadata:    meta,
		Lists:       lists,
	}
}
