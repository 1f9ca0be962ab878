package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jaekwang-park/todo-lists/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "APP_ENV", "LOG_LEVEL", "STORAGE",
		"SESSION_SECRET", "CONFIG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func mustLoad(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := mustLoad(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ServerPort", cfg.ServerPort, "8080"},
		{"AppEnv", cfg.AppEnv, "local"},
		{"LogLevel", cfg.LogLevel, "info"},
		{"Storage", cfg.Storage, "postgres"},
		{"SessionSecret", cfg.SessionSecret, ""},
		{"DB.Host", cfg.DB.Host, "localhost"},
		{"DB.Port", cfg.DB.Port, "5432"},
		{"DB.User", cfg.DB.User, "todo"},
		{"DB.Password", cfg.DB.Password, "todo"},
		{"DB.Name", cfg.DB.Name, "todo"},
		{"DB.SSLMode", cfg.DB.SSLMode, "disable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "admin")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "mydb")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("APP_ENV", "alpha")
	t.Setenv("STORAGE", "Memory")
	t.Setenv("SESSION_SECRET", "a-very-long-session-secret-for-alpha")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := mustLoad(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ServerPort", cfg.ServerPort, "9090"},
		{"DB.Host", cfg.DB.Host, "db.example.com"},
		{"DB.Port", cfg.DB.Port, "5433"},
		{"DB.User", cfg.DB.User, "admin"},
		{"DB.Password", cfg.DB.Password, "secret"},
		{"DB.Name", cfg.DB.Name, "mydb"},
		{"DB.SSLMode", cfg.DB.SSLMode, "require"},
		{"AppEnv", cfg.AppEnv, "alpha"},
		{"Storage", cfg.Storage, "memory"},
		{"SessionSecret", cfg.SessionSecret, "a-very-long-session-secret-for-alpha"},
		{"LogLevel", cfg.LogLevel, "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, `
server_port = "3000"
storage = "memory"
log_level = "warn"

[db]
host = "file-db"
name = "lists"
`))
	t.Setenv("SERVER_PORT", "4000")

	cfg := mustLoad(t)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"env overrides file", cfg.ServerPort, "4000"},
		{"file value", cfg.Storage, "memory"},
		{"file log level", cfg.LogLevel, "warn"},
		{"nested file value", cfg.DB.Host, "file-db"},
		{"nested file name", cfg.DB.Name, "lists"},
		{"default kept", cfg.DB.Port, "5432"},
		{"default env", cfg.AppEnv, "local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: "not found",
		},
		{
			name:    "malformed",
			path:    func(t *testing.T) string { return writeFile(t, "server_port = ") },
			wantErr: "parse config file",
		},
		{
			name:    "unknown key",
			path:    func(t *testing.T) string { return writeFile(t, `listen = ":80"`) },
			wantErr: "unknown key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("CONFIG_FILE", tt.path(t))

			_, err := config.Load()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantSub  string
	}{
		{
			name:     "simple password",
			password: "todo",
			wantSub:  "todo:todo@",
		},
		{
			name:     "password with special chars",
			password: "p@ss/w#rd?",
			wantSub:  "todo:p%40ss%2Fw%23rd%3F@",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("DB_PASSWORD", tt.password)

			dsn := mustLoad(t).DB.DSN()

			if !strings.Contains(dsn, tt.wantSub) {
				t.Errorf("DSN=%s, want to contain %s", dsn, tt.wantSub)
			}
			if !strings.HasPrefix(dsn, "postgres://") {
				t.Errorf("DSN=%s, want postgres:// prefix", dsn)
			}
			if !strings.Contains(dsn, "sslmode=disable") {
				t.Errorf("DSN=%s, want sslmode=disable", dsn)
			}
		})
	}
}

func TestConfig_ParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"uppercase DEBUG", "DEBUG", slog.LevelDebug},
		{"mixed case Warn", "Warn", slog.LevelWarn},
		{"empty defaults to info", "", slog.LevelInfo},
		{"invalid defaults to info", "verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LOG_LEVEL", tt.value)

			got := mustLoad(t).ParseLogLevel()

			if got != tt.want {
				t.Errorf("LOG_LEVEL=%q: got %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	longSecret := strings.Repeat("s", config.MinSecretLength)

	tests := []struct {
		name    string
		port    string
		env     string
		storage string
		secret  string
		wantErr string
	}{
		{"valid local without secret", "8080", "local", "postgres", "", ""},
		{"valid local memory", "8080", "local", "memory", "", ""},
		{"valid alpha", "8080", "alpha", "postgres", longSecret, ""},
		{"valid beta", "9090", "beta", "postgres", longSecret, ""},
		{"valid prod", "80", "prod", "postgres", longSecret, ""},
		{"invalid port", "abc", "local", "postgres", "", "invalid SERVER_PORT"},
		{"invalid env", "8080", "staging", "postgres", "", "invalid APP_ENV"},
		{"invalid storage", "8080", "local", "redis", "", "invalid STORAGE"},
		{"missing secret in prod", "8080", "prod", "postgres", "", "SESSION_SECRET is required"},
		{"missing secret in alpha", "8080", "alpha", "memory", "", "SESSION_SECRET is required"},
		{"short secret in prod", "8080", "prod", "postgres", "short", "at least 32 bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SERVER_PORT", tt.port)
			t.Setenv("APP_ENV", tt.env)
			t.Setenv("STORAGE", tt.storage)
			t.Setenv("SESSION_SECRET", tt.secret)

			err := mustLoad(t).Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.wantErr)
				} else if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func TestConfig_Secret(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		secret     string
		want       string
		wantDev    bool
		wantSecure bool
	}{
		{"local falls back", "local", "", config.DevSessionSecret, true, false},
		{"local with secret", "local", "my-local-secret", "my-local-secret", false, false},
		{"prod uses configured", "prod", "prod-secret", "prod-secret", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{AppEnv: tt.env, SessionSecret: tt.secret}

			if got := string(cfg.Secret()); got != tt.want {
				t.Errorf("Secret() = %q, want %q", got, tt.want)
			}
			if got := cfg.UsesDevSecret(); got != tt.wantDev {
				t.Errorf("UsesDevSecret() = %v, want %v", got, tt.wantDev)
			}
			if got := cfg.SecureCookies(); got != tt.wantSecure {
				t.Errorf("SecureCookies() = %v, want %v", got, tt.wantSecure)
			}
		})
	}
}
