package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielpatrickdp/ending-sim/internal/session"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ending-sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, session.AffinitySkip, cfg.Policy())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Pacing)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "pacing: 250ms\ndb_path: sessions.db\nlog_level: debug\naffinity_policy: retry\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Pacing)
	assert.Equal(t, "sessions.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, session.AffinityRetry, cfg.Policy())
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "pacing: 2s\ndb_path: file.db\n")
	t.Setenv("ENDING_SIM_PACING", "0s")
	t.Setenv("ENDING_SIM_DB", "env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Pacing)
	assert.Equal(t, "env.db", cfg.DBPath)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeFile(t, "pacing: [unclosed\n"))
	assert.Error(t, err)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("ENDING_SIM_PACING", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"negative pacing", func(c *Config) { c.Pacing = -time.Second }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad policy", func(c *Config) { c.AffinityPolicy = "ignore" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mut(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
