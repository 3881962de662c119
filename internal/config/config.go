package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	AuthModeSession = "session"
	AuthModeJWKS    = "jwks"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Storage  StorageConfig  `toml:"storage"`
	Cache    CacheConfig    `toml:"cache"`
	CORS     CORSConfig     `toml:"cors"`
	Jobs     JobsConfig     `toml:"jobs"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds a lib/pq connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	// Mode selects the session resolver: "session" or "jwks"
	Mode              string     `toml:"mode"`
	CookieName        string     `toml:"cookie_name"`
	CookieSecure      bool       `toml:"cookie_secure"`
	AdminUsername     string     `toml:"admin_username"`
	AdminPasswordHash string     `toml:"admin_password_hash"` // bcrypt
	AdminSessionHours int        `toml:"admin_session_hours"`
	TeamSessionHours  int        `toml:"team_session_hours"`
	JWKS              JWKSConfig `toml:"jwks"`
}

type JWKSConfig struct {
	URL             string   `toml:"url"`
	CacheTTLSeconds int      `toml:"cache_ttl_seconds"`
	Timeout         int      `toml:"timeout"` // seconds
	AdminSubjects   []string `toml:"admin_subjects"`
}

type StorageConfig struct {
	Endpoint        string `toml:"endpoint"`
	Region          string `toml:"region"`
	Bucket          string `toml:"bucket"`
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
	MaxUploadMB     int    `toml:"max_upload_mb"`
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	RedisURL   string `toml:"redis_url"`
	TTLMinutes int    `toml:"ttl_minutes"`
}

type CORSConfig struct {
	// AllowedOrigins are echoed back with credentials allowed; everything else gets "*"
	AllowedOrigins []string `toml:"allowed_origins"`
}

type JobsConfig struct {
	SessionCleanupMinutes int `toml:"session_cleanup_minutes"`
}

// Load reads the TOML file, applies defaults and env overrides, then validates
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 30)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	setDefault(&c.Database.Port, 5432)
	setDefault(&c.Database.MaxOpenConns, 10)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "stay_admin"
	}

	if c.Auth.Mode == "" {
		c.Auth.Mode = AuthModeSession
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "session"
	}
	setDefault(&c.Auth.AdminSessionHours, 24)
	setDefault(&c.Auth.TeamSessionHours, 24*7)
	setDefault(&c.Auth.JWKS.CacheTTLSeconds, 3600)
	setDefault(&c.Auth.JWKS.Timeout, 5)

	if c.Storage.Region == "" {
		c.Storage.Region = "auto"
	}
	setDefault(&c.Storage.MaxUploadMB, 10)

	setDefault(&c.Cache.TTLMinutes, 30)

	setDefault(&c.Jobs.SessionCleanupMinutes, 60)
}

// applyEnv lets secrets stay out of the config file
func (c *Config) applyEnv() {
	overrideFromEnv(&c.Database.Password, "DB_PASSWORD")
	overrideFromEnv(&c.Auth.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	overrideFromEnv(&c.Storage.AccessKeyID, "STORAGE_ACCESS_KEY_ID")
	overrideFromEnv(&c.Storage.SecretAccessKey, "STORAGE_SECRET_ACCESS_KEY")
	overrideFromEnv(&c.Cache.RedisURL, "REDIS_URL")
}

// Validate checks the fields the service cannot start without
func (c *Config) Validate() error {
	var problems []string

	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}

	switch c.Auth.Mode {
	case AuthModeSession:
		if c.Auth.AdminUsername == "" || c.Auth.AdminPasswordHash == "" {
			problems = append(problems, "auth.admin_username and auth.admin_password_hash are required in session mode")
		}
	case AuthModeJWKS:
		if c.Auth.JWKS.URL == "" {
			problems = append(problems, "auth.jwks.url is required in jwks mode")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown auth.mode %q", c.Auth.Mode))
	}

	if c.Storage.Bucket == "" {
		problems = append(problems, "storage.bucket is required")
	}

	if c.Cache.Enabled && c.Cache.RedisURL == "" {
		problems = append(problems, "cache.redis_url is required when cache is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func overrideFromEnv(v *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*v = value
	}
}
