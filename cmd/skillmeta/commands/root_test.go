package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// resetFlags restores every package-level flag variable, since cobra keeps
// parsed values between Execute calls.
func resetFlags() {
	platformFlag = ""
	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	strictFlag = false
	configPath = ""
	cfg = nil
	configLoadErr = nil

	listJSON = false
	showFormat = "text"
	showBody = false
	validateJSON = false
	validateAll = false
	tagsJSON = false
	indexOutput = ""
	indexFormat = "json"
	initName = ""
	initDescription = ""
	initTags = nil
	initForce = false
	genDocDir = ""
	genDocMan = false

	viper.Reset()
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeSkill creates root/dir/SKILL.md and returns the skill directory.
func writeSkill(t *testing.T, root, dir, content string) string {
	t.Helper()
	full := filepath.Join(root, dir)
	require.NoError(t, os.MkdirAll(full, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(full, "SKILL.md"), []byte(content), 0o644))
	return full
}

// skillTree builds a small skill tree used by several command tests.
func skillTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSkill(t, root, "pdf", "---\nname: pdf\ndescription: Work with PDF files\ntags: [docs, pdf]\n---\n# PDF\n")
	writeSkill(t, root, filepath.Join("office", "docx"), "---\nname: docx\ndescription: Edit Word documents\ntags:\n  - docs\n  - office\n---\n")
	return root
}

func TestQuietAndVerboseConflict(t *testing.T) {
	_, _, err := execute(t, "-q", "-v", "list", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := execute(t, "--log-format", "xml", "list", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestInvalidPlatform(t *testing.T) {
	_, _, err := execute(t, "--platform", "vim", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid platform")
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	var exitErr *errors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Suggestion, "--config")
}

func TestConfigFileRequiredFields(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "pdf", "---\nname: pdf\n---\n")

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("required_fields: [name]\n"), 0o644))

	_, _, err := execute(t, "--config", configFile, "validate", filepath.Join(root, "pdf"))
	assert.NoError(t, err)
}

func TestLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "skillmeta.log")

	_, _, err := execute(t, "-vv", "--log-file", logPath, "list", skillTree(t))
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"found skill directories"`)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "skillmeta version dev")
	assert.Contains(t, out, "commit: none")
}
