package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// FAQ sources.
const (
	SourceCSV      = "csv"
	SourceMySQL    = "mysql"
	SourcePostgres = "postgres"
)

// Config holds application configuration loaded from an optional config
// file and the environment.
type Config struct {
	Env  string `mapstructure:"app_env"`  // local, production, ...
	Host string `mapstructure:"app_host"` // listen host, empty means all interfaces
	Port int    `mapstructure:"app_port"` // listen port for the web server

	Source      string `mapstructure:"faq_source"`   // csv, mysql or postgres
	CSVPath     string `mapstructure:"faq_csv_path"` // csv file with question,answer header
	MySQLDSN    string `mapstructure:"mysql_dsn"`
	DatabaseURL string `mapstructure:"database_url"`

	RedisAddr     string        `mapstructure:"redis_addr"` // empty disables the match cache
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
}

// Addr returns the host:port the web server listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Validate reports configuration that cannot work.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}

	switch c.Source {
	case SourceCSV:
	case SourceMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("%w: MYSQL_DSN", ErrMissingDSN)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL", ErrMissingDSN)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSource, c.Source)
	}
	return nil
}

// Load reads config.yaml (from . or ./config) when present and overlays
// environment variables named after the upper-cased keys.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Every key needs a default so AutomaticEnv can see it on Unmarshal.
	v.SetDefault("app_env", "local")
	v.SetDefault("app_host", "")
	v.SetDefault("app_port", 5000)
	v.SetDefault("faq_source", SourceCSV)
	v.SetDefault("faq_csv_path", "data/faq.csv")
	v.SetDefault("mysql_dsn", "")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "10m")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
