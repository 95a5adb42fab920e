package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
	assert.Equal(t, "data/blog.db", cfg.DatabasePath())
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Error(t, cfg.Validate(), "secret is required")
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BLOG_ENV", "Test")
	t.Setenv("BLOG_SERVER_PORT", "9090")
	t.Setenv("BLOG_DATABASE_TESTPATH", "/tmp/blog-test.db")
	t.Setenv("BLOG_AUTH_JWTSECRET", "s3cret")
	t.Setenv("BLOG_AUTH_TOKENTTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvTest, cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr())
	assert.Equal(t, "/tmp/blog-test.db", cfg.DatabasePath())
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.Env = EnvProduction
	cfg.Auth.JWTSecret = "k"
	cfg.Database.Path = "blog.db"
	assert.NoError(t, cfg.Validate())

	cfg.Env = "staging"
	assert.Error(t, cfg.Validate())

	cfg.Env = EnvTest
	assert.Error(t, cfg.Validate(), "test env needs its own database path")
}

func TestListenAddr(t *testing.T) {
	var cfg Config
	cfg.Server.Addr = "127.0.0.1:8080"
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr())

	cfg.Server.Port = "3000"
	assert.Equal(t, "127.0.0.1:3000", cfg.ListenAddr())

	cfg.Server.Addr = ""
	assert.Equal(t, ":3000", cfg.ListenAddr())
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
