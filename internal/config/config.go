package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultJWTSecret = "change-me-in-production"

type Config struct {
	App      AppConfig      `yaml:"app"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Uploads  UploadsConfig  `yaml:"uploads"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Env  string `yaml:"env"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	JWTSecret    string        `yaml:"jwt_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	CookieName   string        `yaml:"cookie_name"`
	CookieSecure bool          `yaml:"cookie_secure"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite | postgres
	Path   string `yaml:"path"`   // sqlite file
	DSN    string `yaml:"dsn"`    // postgres connection string
}

type UploadsConfig struct {
	Path      string `yaml:"path"`
	URLPrefix string `yaml:"url_prefix"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:  "development",
			Host: "127.0.0.1",
			Port: 8080,
		},
		Auth: AuthConfig{
			JWTSecret:  DefaultJWTSecret,
			TokenTTL:   time.Hour,
			CookieName: "token",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			Path:   "./data/bookreview.db",
		},
		Uploads: UploadsConfig{
			Path:      "./uploads",
			URLPrefix: "/uploads",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func Load() (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.App.Env = env
	}
	if host := os.Getenv("APP_HOST"); host != "" {
		cfg.App.Host = host
	}
	if port := os.Getenv("APP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.App.Port = p
		}
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			cfg.Auth.TokenTTL = d
		}
	}
	if secure := os.Getenv("COOKIE_SECURE"); secure == "true" {
		cfg.Auth.CookieSecure = true
	}
	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if uploads := os.Getenv("UPLOADS_PATH"); uploads != "" {
		cfg.Uploads.Path = uploads
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

// Validate rejects configurations the server must not start with.
func (c *Config) Validate() error {
	var problems []string

	if !c.IsDevelopment() && c.Auth.JWTSecret == DefaultJWTSecret {
		problems = append(problems, "jwt_secret must be changed outside development")
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "jwt_secret is empty")
	}
	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "token_ttl must be positive")
	}
	if c.Auth.CookieName == "" {
		problems = append(problems, "cookie_name is empty")
	}
	if !strings.HasPrefix(c.Uploads.URLPrefix, "/") || c.Uploads.URLPrefix == "/" {
		problems = append(problems, "uploads.url_prefix must be a path below /")
	}
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database.path is required for sqlite")
		}
	case "postgres":
		if c.Database.DSN == "" {
			problems = append(problems, "database.dsn is required for postgres")
		}
	default:
		problems = append(problems, "unknown database driver "+strconv.Quote(c.Database.Driver))
	}

	if len(problems) > 0 {
		return errors.New("invalid config: " + strings.Join(problems, "; "))
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
