package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Env    string
	Server struct {
		Addr string
		Port string
	}
	Database struct {
		Path     string
		TestPath string
	}
	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}
	Log struct {
		Level string
	}
}

// Load reads configuration from environment variables and optional config files.
// Variables use the BLOG_ prefix, e.g. BLOG_AUTH_JWTSECRET.
func Load() (Config, error) {
	// a missing .env is fine; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.port", "")
	v.SetDefault("database.path", "data/blog.db")
	v.SetDefault("database.testpath", "data/blog_test.db")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenttl", time.Hour)
	v.SetDefault("log.level", "info")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))

	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("auth jwt secret is required")
	}
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTest:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}
	if c.DatabasePath() == "" {
		return errors.New("database path is required")
	}
	return nil
}

// DatabasePath selects the database for the current environment.
func (c Config) DatabasePath() string {
	if c.Env == EnvTest {
		return c.Database.TestPath
	}
	return c.Database.Path
}

// ListenAddr is Server.Addr with its port replaced by Server.Port when set.
func (c Config) ListenAddr() string {
	port := strings.TrimSpace(c.Server.Port)
	if port == "" {
		return c.Server.Addr
	}
	host, _, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		host = ""
	}
	return net.JoinHostPort(host, port)
}
