// Package config loads skillmeta settings with Viper.
//
// Settings come from, in increasing precedence: built-in defaults, a
// config.yaml found in the current directory or the XDG config directory
// (~/.config/skillmeta on Linux), and SKILLMETA_* environment variables.
// Command-line flags are applied on top by the CLI.
//
// Example config.yaml:
//
//	version: 1
//	root: ~/src/skills
//	strict: true
//	required_fields: [name, description]
//	list_fields: [tags, allowed-tools]
//	match_dir: true
package config
