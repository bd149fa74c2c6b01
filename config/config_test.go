package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "turtle", cfg.Generation.Format)
	assert.Equal(t, "ollama", cfg.Polish.Provider)
	assert.NotEmpty(t, cfg.Polish.Model)
	assert.Equal(t, 5*time.Minute, cfg.Polish.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:   "ntriples format",
			mutate: func(c *Config) { c.Generation.Format = "ntriples" },
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Generation.Format = "rdfxml" },
			wantErr: "generation.format",
		},
		{
			name:    "missing provider",
			mutate:  func(c *Config) { c.Polish.Provider = "" },
			wantErr: "polish.provider",
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.Polish.Model = "" },
			wantErr: "polish.model",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Polish.Timeout = 0 },
			wantErr: "polish.timeout",
		},
		{
			name:    "bad separator",
			mutate:  func(c *Config) { c.SHACL.IRISep = "-" },
			wantErr: "shacl.iri_sep",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "semdocs.yaml")
	content := `
generation:
  format: ntriples
polish:
  provider: anthropic
  model: claude-sonnet-4-5
  lang: en
shacl:
  iri_base: "http://example.org/onto"
  iri_sep: "#"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ntriples", cfg.Generation.Format)
	assert.Equal(t, "anthropic", cfg.Polish.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.Polish.Model)
	assert.Equal(t, "en", cfg.Polish.Lang)
	// Unset fields keep their defaults.
	assert.Equal(t, 5*time.Minute, cfg.Polish.Timeout)
	assert.Equal(t, "http://example.org/onto", cfg.SHACL.IRIBase)
	assert.Equal(t, "#", cfg.SHACL.IRISep)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Polish: PolishConfig{Provider: "openai", Endpoint: "http://localhost:8080/v1"},
	})

	assert.Equal(t, "openai", base.Polish.Provider)
	assert.Equal(t, "http://localhost:8080/v1", base.Polish.Endpoint)
	// Untouched fields survive the merge.
	assert.Equal(t, "turtle", base.Generation.Format)
	assert.NotEmpty(t, base.Polish.Model)

	base.Merge(nil)
	assert.Equal(t, "openai", base.Polish.Provider)
}

func TestLoaderUsesProjectConfig(t *testing.T) {
	dir := t.TempDir()
	content := "polish:\n  provider: anthropic\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(content), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := NewLoader(nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.Polish.Provider)
}
