package paths

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

// AppName names the config directory.
const AppName = "skillmeta"

// Platform identifiers for supported AI coding assistants.
const (
	PlatformClaude   = "claude"
	PlatformOpenCode = "opencode"
	PlatformCodex    = "codex"
	PlatformGemini   = "gemini"
)

// platformSkillRoots maps platforms to their user skill directory,
// relative to the home directory.
var platformSkillRoots = map[string]string{
	PlatformClaude:   filepath.Join(".claude", "skills"),
	PlatformOpenCode: filepath.Join(".config", "opencode", "skill"),
	PlatformCodex:    filepath.Join(".codex", "skills"),
	PlatformGemini:   filepath.Join(".gemini", "skills"),
}

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrap(ErrHomeDirNotFound, "resolving home directory")
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the skillmeta config directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ValidPlatform reports whether platform is a known platform name.
func ValidPlatform(platform string) bool {
	_, ok := platformSkillRoots[platform]
	return ok
}

// Platforms returns the known platform names, sorted.
func Platforms() []string {
	names := make([]string, 0, len(platformSkillRoots))
	for name := range platformSkillRoots {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SkillRoot returns the user-level skill directory for platform.
func SkillRoot(platform string) (string, error) {
	rel, ok := platformSkillRoots[platform]
	if !ok {
		return "", errors.Newf("unknown platform %q", platform)
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rel), nil
}
