package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SourceJSON     = "json"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr         string        `mapstructure:"http_addr"`
	DataSource       string        `mapstructure:"data_source"`
	DataDir          string        `mapstructure:"data_dir"`
	DatabaseURL      string        `mapstructure:"database_url"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
	RateLimit        float64       `mapstructure:"rate_limit"`
	RateBurst        int           `mapstructure:"rate_burst"`
	LoginMaxAttempts int           `mapstructure:"login_max_attempts"`
	LoginLockWindow  time.Duration `mapstructure:"login_lock_window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("data_source", SourceJSON)
	v.SetDefault("data_dir", "data")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("jwt_secret", "change-me-in-production")
	v.SetDefault("token_ttl", 8*time.Hour)
	v.SetDefault("rate_limit", 10.0)
	v.SetDefault("rate_burst", 20)
	v.SetDefault("login_max_attempts", 5)
	v.SetDefault("login_lock_window", 15*time.Minute)
}

// Load reads defaults, then the optional file at path, then BACKOFFICE_*
// environment variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceJSON:
		if c.DataDir == "" {
			return errors.New("data_dir is required for the json data source")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return errors.New("database_url is required for the postgres data source")
		}
	default:
		return fmt.Errorf("unknown data_source %q", c.DataSource)
	}
	if c.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	if c.RateLimit <= 0 || c.RateBurst <= 0 {
		return errors.New("rate_limit and rate_burst must be positive")
	}
	if c.LoginMaxAttempts <= 0 {
		return errors.New("login_max_attempts must be positive")
	}
	return nil
}
