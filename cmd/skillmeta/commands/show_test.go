package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

func TestShow_Text(t *testing.T) {
	dir := filepath.Join(skillTree(t), "office", "docx")

	out, _, err := execute(t, "show", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "name:")
	assert.Contains(t, out, "Edit Word documents")
	assert.Contains(t, out, "- office")
	assert.NotContains(t, out, "---")
}

func TestShow_JSONWithBody(t *testing.T) {
	dir := filepath.Join(skillTree(t), "pdf")

	out, _, err := execute(t, "show", "--format", "json", "--body", dir)
	require.NoError(t, err)

	var got struct {
		Dir      string            `json:"dir"`
		Metadata map[string]string `json:"metadata"`
		Body     string            `json:"body"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, dir, got.Dir)
	assert.Equal(t, "[docs, pdf]", got.Metadata["tags"])
	assert.Contains(t, got.Body, "# PDF")
}

func TestShow_YAML(t *testing.T) {
	dir := filepath.Join(skillTree(t), "pdf")

	out, _, err := execute(t, "show", "-f", "yaml", dir)
	require.NoError(t, err)

	var got struct {
		Metadata yaml.Node `yaml:"metadata"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Metadata.Content, 6)
	assert.Equal(t, "name", got.Metadata.Content[0].Value)
	assert.Equal(t, "description", got.Metadata.Content[2].Value)
	assert.Equal(t, "tags", got.Metadata.Content[4].Value)
}

func TestShow_MissingIsNotFound(t *testing.T) {
	_, _, err := execute(t, "show", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestShow_Errors(t *testing.T) {
	root := t.TempDir()
	broken := writeSkill(t, root, "broken", "name: broken\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing SKILL.md", []string{"show", root}, "no SKILL.md in"},
		{"strict malformed", []string{"--strict", "show", broken}, "missing frontmatter opening"},
		{"bad format", []string{"show", "-f", "xml", broken}, "unsupported format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		})
	}
}
