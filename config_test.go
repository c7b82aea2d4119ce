package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motviz.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestConfigFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
txt_path = "results/mot17.txt"
img_dir = "results/img1"
fps = 24
on_decode_error = "abort"
`)

	cfg := defaultConfig()
	require.NoError(t, cfg.loadFile(path))

	assert.Equal(t, "results/mot17.txt", cfg.TxtPath)
	assert.Equal(t, "results/img1", cfg.ImgDir)
	assert.Equal(t, 24, cfg.FPS)
	assert.Equal(t, decodeErrorAbort, cfg.OnDecodeError)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, defaultOutputPath, cfg.OutputPath)
	assert.Equal(t, int64(0), cfg.Seed)

	assert.NoError(t, cfg.validate())
}

func TestConfigFileUnreadable(t *testing.T) {
	cfg := defaultConfig()
	assert.Error(t, cfg.loadFile(filepath.Join(t.TempDir(), "nope.toml")))
}

func TestConfigFileMalformed(t *testing.T) {
	path := writeConfig(t, "fps = [not toml")

	cfg := defaultConfig()
	assert.Error(t, cfg.loadFile(path))
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := defaultConfig()
		cfg.TxtPath = "a.txt"
		cfg.ImgDir = "imgs"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing txt_path", func(c *Config) { c.TxtPath = "" }, "txt_path"},
		{"missing img_dir", func(c *Config) { c.ImgDir = "" }, "img_dir"},
		{"zero fps", func(c *Config) { c.FPS = 0 }, "fps"},
		{"negative fps", func(c *Config) { c.FPS = -5 }, "fps"},
		{"bad policy", func(c *Config) { c.OnDecodeError = "retry" }, "on_decode_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
