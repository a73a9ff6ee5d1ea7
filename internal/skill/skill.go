// Package skill discovers skill directories and loads their SKILL.md metadata.
package skill

import (
	"github.com/thoreinstein/skillmeta/pkg/frontmatter"
)

// FileName is the metadata file that marks a directory as a skill.
const FileName = "SKILL.md"

// Well-known frontmatter keys.
const (
	KeyName        = "name"
	KeyDescription = "description"
	KeyTags        = "tags"
)

// Skill is a directory containing a SKILL.md file, together with the
// metadata read from its frontmatter.
type Skill struct {
	// Dir is the directory containing SKILL.md.
	Dir string
	// Name is the frontmatter name, or the directory name when absent.
	Name string
	// Description is the frontmatter description.
	Description string
	// Metadata holds every frontmatter key in file order.
	Metadata *frontmatter.Map
	// Lists holds the configured list fields, split with frontmatter.ParseList.
	Lists map[string][]string
}

// Path returns the path of the skill's SKILL.md file.
func (s *Skill) Path() string {
	return FilePath(s.Dir)
}

// Tags returns the parsed "tags" list field.
func (s *Skill) Tags() []string {
	return s.Lists[KeyTags]
}
