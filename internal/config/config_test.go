package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/projecthub.db", cfg.Database.Path)
	assert.Equal(t, 600, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "plain", cfg.Auth.PasswordEncoder)
	assert.False(t, cfg.Seed.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Hour, cfg.TokenTTL())

	assert.Error(t, cfg.Validate(), "jwt secret is required")
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PROJECTHUB_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("PROJECTHUB_AUTH_JWTSECRET", "s3cret")
	t.Setenv("PROJECTHUB_AUTH_TOKENTTLMINUTES", "5")
	t.Setenv("PROJECTHUB_SEED_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL())
	assert.True(t, cfg.Seed.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database:
  path: /tmp/other.db
auth:
  jwtsecret: from-file
  passwordencoder: bcrypt
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordEncoder)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_TTL(t *testing.T) {
	var cfg Config
	cfg.Auth.JWTSecret = "k"
	cfg.Auth.TokenTTLMinutes = 0
	assert.Error(t, cfg.Validate())
}
