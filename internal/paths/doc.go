// Package paths resolves the directories skillmeta reads from.
//
// Configuration lives under the XDG config home (github.com/adrg/xdg), so
// on Linux the config file is ~/.config/skillmeta/config.yaml.
//
// AI coding assistants keep user-level skills in well-known directories;
// [SkillRoot] maps a platform name to that directory so commands can scan
// it without spelling out the path:
//
//	| Platform  | Skill root                  |
//	|-----------|-----------------------------|
//	| claude    | ~/.claude/skills            |
//	| opencode  | ~/.config/opencode/skill    |
//	| codex     | ~/.codex/skills             |
//	| gemini    | ~/.gemini/skills            |
package paths
