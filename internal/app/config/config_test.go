package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "memory", cfg.Cart.Store)
	assert.Equal(t, "merge", cfg.Cart.MergePolicy)
	assert.Equal(t, "24h0m0s", cfg.Cart.TTL.String())
	assert.True(t, cfg.Demo.SeedData)
	assert.Empty(t, cfg.NATS.URL)
	assert.Empty(t, cfg.SMTP.Host)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	t.Setenv("CART_STORE", "redis")
	t.Setenv("CART_MERGE_POLICY", "append")
	t.Setenv("SEED_DEMO_DATA", "false")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "mongo", cfg.Storage.Driver)
	assert.Equal(t, "redis", cfg.Cart.Store)
	assert.Equal(t, "append", cfg.Cart.MergePolicy)
	assert.False(t, cfg.Demo.SeedData)
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := []byte("env: prod\ncart:\n  merge_policy: append\n  ttl: 1h\n")
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "append", cfg.Cart.MergePolicy)
	assert.Equal(t, "1h0m0s", cfg.Cart.TTL.String())
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("ENV", "staging")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Env)
}
