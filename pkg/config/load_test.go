package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gonote/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Host string `env:"SAMPLE_HOST" env-default:"localhost"`
	Port int    `env:"SAMPLE_PORT" env-default:"8080"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "missing.env"))

		cfg, err := config.Load[sample](context.Background(), "test")
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("SAMPLE_HOST", "db.internal")
		t.Setenv("SAMPLE_PORT", "5432")

		cfg, err := config.Load[sample](context.Background(), "test")
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
	})

	t.Run("values from env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SAMPLE_HOST=from-file\nSAMPLE_PORT=9000\n"), 0o600))
		t.Setenv(config.PathEnv, path)

		cfg, err := config.Load[sample](context.Background(), "test")
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.Host)
		assert.Equal(t, 9000, cfg.Port)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv(config.PathEnv, filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("SAMPLE_PORT", "not-a-number")

		cfg, err := config.Load[sample](context.Background(), "test")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
