package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

var validEnvs = map[string]bool{
	"local": true,
	"alpha": true,
	"beta":  true,
	"prod":  true,
}

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// MinSecretLength is the shortest session secret accepted outside local.
const MinSecretLength = 32

// DevSessionSecret signs session cookies in local when SESSION_SECRET is unset.
const DevSessionSecret = "insecure-local-development-session-secret"

type Config struct {
	ServerPort    string   `toml:"server_port"`
	AppEnv        string   `toml:"app_env"`
	LogLevel      string   `toml:"log_level"`
	Storage       string   `toml:"storage"`
	SessionSecret string   `toml:"session_secret"`
	DB            DBConfig `toml:"db"`
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) Validate() error {
	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("invalid SERVER_PORT %q: %w", c.ServerPort, err)
	}
	if !validEnvs[c.AppEnv] {
		return fmt.Errorf("invalid APP_ENV %q: must be one of local, alpha, beta, prod", c.AppEnv)
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("invalid STORAGE %q: must be one of postgres, memory", c.Storage)
	}
	if c.AppEnv != "local" {
		if c.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET is required in %s environment", c.AppEnv)
		}
		if len(c.SessionSecret) < MinSecretLength {
			return fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSecretLength)
		}
	}
	return nil
}

// UsesDevSecret reports whether sessions fall back to DevSessionSecret.
func (c Config) UsesDevSecret() bool {
	return c.SessionSecret == "" && c.AppEnv == "local"
}

// Secret returns the key used to sign session cookies.
func (c Config) Secret() []byte {
	if c.UsesDevSecret() {
		return []byte(DevSessionSecret)
	}
	return []byte(c.SessionSecret)
}

// SecureCookies reports whether session cookies carry the Secure attribute.
func (c Config) SecureCookies() bool {
	return c.AppEnv != "local"
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"sslmode"`
}

func (d DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}
	return u.String()
}

func defaults() Config {
	return Config{
		ServerPort: "8080",
		AppEnv:     "local",
		LogLevel:   "info",
		Storage:    StoragePostgres,
		DB: DBConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "todo",
			Password: "todo",
			Name:     "todo",
			SSLMode:  "disable",
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file named
// by CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.ServerPort = envOrDefault("SERVER_PORT", cfg.ServerPort)
	cfg.AppEnv = envOrDefault("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.Storage = strings.ToLower(envOrDefault("STORAGE", cfg.Storage))
	cfg.SessionSecret = envOrDefault("SESSION_SECRET", cfg.SessionSecret)
	cfg.DB.Host = envOrDefault("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envOrDefault("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envOrDefault("DB_USER", cfg.DB.User)
	cfg.DB.Password = envOrDefault("DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Name = envOrDefault("DB_NAME", cfg.DB.Name)
	cfg.DB.SSLMode = envOrDefault("DB_SSLMODE", cfg.DB.SSLMode)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
