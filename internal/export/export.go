// Package export encodes skill catalogs and frontmatter mappings as JSON,
// YAML or TOML.
package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillmeta/internal/errors"
	"github.com/thoreinstein/skillmeta/internal/skill"
	"github.com/thoreinstein/skillmeta/pkg/fileutil"
	"github.com/thoreinstein/skillmeta/pkg/frontmatter"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML}

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%q (valid: %s)", s, strings.Join(names, ", "))
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "%s has no extension", path)
	}
	return ParseFormat(ext)
}

// Record is the exported view of one skill.
type Record struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Dir         string           `json:"dir" yaml:"dir"`
	Tags        []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Metadata    *frontmatter.Map `json:"metadata" yaml:"metadata"`
}

// Catalog is the document written by the index command.
type Catalog struct {
	Skills []Record `json:"skills" yaml:"skills"`
}

// NewRecord converts a loaded skill.
func NewRecord(s *skill.Skill) Record {
	meta := s.Metadata
	if meta == nil {
		meta = frontmatter.NewMap()
	}
	return Record{
		Name:        s.Name,
		Description: s.Description,
		Dir:         s.Dir,
		Tags:        s.Tags(),
		Metadata:    meta,
	}
}

// NewCatalog converts skills in order.
func NewCatalog(skills []*skill.Skill) *Catalog {
	c := &Catalog{Skills: make([]Record, 0, len(skills))}
	for _, s := range skills {
		c.Skills = append(c.Skills, NewRecord(s))
	}
	return c
}

// Marshal encodes v in format f. TOML output is produced from the YAML
// encoding, so key order within tables follows the TOML encoder (sorted)
// rather than frontmatter order.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling json")
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return marshalYAML(v)
	case FormatTOML:
		return marshalTOML(v)
	}
	return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", f)
}

// WriteFile encodes v in the format named by path's extension and writes it
// atomically.
func WriteFile(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(v, f)
	if err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	return buf.Bytes(), nil
}

func marshalTOML(v any) ([]byte, error) {
	yamlData, err := marshalYAML(v)
	if err != nil {
		return nil, err
	}
	var data any
	if err := yaml.Unmarshal(yamlData, &data); err != nil {
		return nil, errors.Wrap(err, "unmarshaling yaml")
	}
	if _, ok := data.(map[string]any); !ok {
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "toml needs a table at the top level")
	}
	out, err := toml.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return out, nil
}
