package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("nope.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "outie.yaml", `
zoom: 3
seed: 42
audio:
  enabled: false
  volume: 0.25
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Zoom)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, DefaultLogDir, cfg.LogDir, "unset keys keep defaults")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "outie.yaml", "zoom: [1, 2\n")

	_, err := Load(p)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	p := writeFile(t, dir, "outie.yaml", "zoom: 3\n")
	t.Setenv("OUTIE_ZOOM", "5")
	t.Setenv("OUTIE_SEED", "7")
	t.Setenv("OUTIE_MUTE", "true")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Zoom)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", "OUTIE_VOLUME=0.1\n")
	// Registers cleanup of the variable godotenv is about to set.
	t.Setenv("OUTIE_VOLUME", "")
	require.NoError(t, os.Unsetenv("OUTIE_VOLUME"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 0.1, cfg.Audio.Volume)
}

func TestApplyEnvErrors(t *testing.T) {
	for _, key := range []string{"OUTIE_ZOOM", "OUTIE_SEED", "OUTIE_VOLUME", "OUTIE_MUTE", "OUTIE_DEBUG"} {
		t.Run(key, func(t *testing.T) {
			cfg := Default()
			err := cfg.applyEnv(func(k string) (string, bool) {
				if k == key {
					return "bogus", true
				}
				return "", false
			})
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Zoom = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Zoom = MaxZoom + 1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Audio.Volume = 1.5
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Debug = true
	bad.LogDir = ""
	assert.Error(t, bad.Validate())
}

func TestSetupLoggingDisabledByDefault(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f := SetupLogging(Default())
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, log.Writer())
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	cfg := Default()
	cfg.Debug = true
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")

	f := SetupLogging(cfg)
	require.NotNil(t, f)
	defer f.Close()

	log.Println("hello")

	info, err := os.Stat(filepath.Join(cfg.LogDir, LogFileName))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
