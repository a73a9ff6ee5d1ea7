package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillmeta/internal/errors"
)

func TestInit_Defaults(t *testing.T) {
	viper.Reset()
	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, ".", viper.GetString("root"))
	assert.False(t, viper.GetBool("strict"))
	assert.Equal(t, []string{"name", "description"}, viper.GetStringSlice("required_fields"))
	assert.Equal(t, []string{"tags"}, viper.GetStringSlice("list_fields"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	viper.Reset()
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.True(t, cfg.MatchDir)
	assert.Empty(t, Validate(cfg))
}

func TestLoad_WithConfigFile(t *testing.T) {
	viper.Reset()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("root: /srv/skills\nstrict: true\nrequired_fields: [name]\nlist_fields:\n  - tags\n  - allowed-tools\n")
	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	Init()
	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/skills", cfg.Root)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"name"}, cfg.RequiredFields)
	assert.Equal(t, []string{"tags", "allowed-tools"}, cfg.ListFields)
	assert.Equal(t, configPath, Used())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	viper.Reset()
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	viper.Reset()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("root: [unclosed\n"), 0o600))

	Init()
	_, err := Load(configPath)
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Setenv("SKILLMETA_STRICT", "true")
	t.Setenv("SKILLMETA_ROOT", "/from/env")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "/from/env", cfg.Root)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr []error
	}{
		{
			name: "valid",
			cfg:  &Config{Version: 1, Root: ".", RequiredFields: []string{"name"}},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: []error{nil},
		},
		{
			name:    "version too low",
			cfg:     &Config{Version: 0},
			wantErr: []error{ErrVersionTooLow},
		},
		{
			name:    "bad platform",
			cfg:     &Config{Version: 1, Platform: "vim"},
			wantErr: []error{ErrInvalidPlatform},
		},
		{
			name:    "null byte in root",
			cfg:     &Config{Version: 1, Root: "a\x00b"},
			wantErr: []error{ErrInvalidPath},
		},
		{
			name:    "bad field names",
			cfg:     &Config{Version: 1, RequiredFields: []string{"name:"}, ListFields: []string{" tags"}},
			wantErr: []error{ErrInvalidField, ErrInvalidField},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			require.Len(t, errs, len(tt.wantErr))
			for i, want := range tt.wantErr {
				if want != nil {
					assert.True(t, errors.Is(errs[i], want), "errs[%d] = %v, want %v", i, errs[i], want)
				}
			}
		})
	}
}
