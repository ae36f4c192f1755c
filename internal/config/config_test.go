package config

import (
	"strings"
	"testing"
)

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	envVars := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASSWORD",
		"MAIL_FROM", "MAIL_OWNER", "MEDIA_ROOT", "CORS_ORIGINS",
	}
	// envOrDefault treats "" the same as unset, so setting empty is enough.
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "0.0.0.0")
	check("Port", cfg.Port, "8080")
	check("Env", cfg.Env, "development")
	check("DBHost", cfg.DBHost, "localhost")
	check("DBPort", cfg.DBPort, "5432")
	check("DBUser", cfg.DBUser, "folio")
	check("DBPassword", cfg.DBPassword, "changeme")
	check("DBName", cfg.DBName, "folio")
	check("RedisHost", cfg.RedisHost, "")
	check("RedisPort", cfg.RedisPort, "6379")
	check("MediaRoot", cfg.MediaRoot, "media")
	check("CORSOrigins", cfg.CORSOrigins, "*")

	if cfg.SMTPPort != 587 {
		t.Errorf("SMTPPort = %d, want 587", cfg.SMTPPort)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false, want true for default env")
	}
}

// TestLoad_EnvOverrides verifies that environment variables override defaults.
func TestLoad_EnvOverrides(t *testing.T) {
	overrides := map[string]string{
		"APP_HOST":          "127.0.0.1",
		"APP_PORT":          "9090",
		"APP_ENV":           "testing",
		"POSTGRES_HOST":     "db.example.com",
		"POSTGRES_PORT":     "5433",
		"POSTGRES_USER":     "testuser",
		"POSTGRES_PASSWORD": "testpass",
		"POSTGRES_DB":       "testdb",
		"REDIS_HOST":        "cache.example.com",
		"REDIS_PORT":        "6380",
		"REDIS_PASSWORD":    "cachepass",
		"SMTP_HOST":         "smtp.example.com",
		"SMTP_PORT":         "2525",
		"SMTP_USER":         "mailer",
		"SMTP_PASSWORD":     "mailpass",
		"MAIL_FROM":         "noreply@example.com",
		"MAIL_OWNER":        "owner@example.com",
		"MEDIA_ROOT":        "/srv/media",
		"CORS_ORIGINS":      "https://example.com",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	check := func(field, got, want string) {
		t.Helper()
		if got != want {
			t.Errorf("%s = %q, want %q", field, got, want)
		}
	}

	check("Host", cfg.Host, "127.0.0.1")
	check("Port", cfg.Port, "9090")
	check("Env", cfg.Env, "testing")
	check("DBHost", cfg.DBHost, "db.example.com")
	check("DBPort", cfg.DBPort, "5433")
	check("DBUser", cfg.DBUser, "testuser")
	check("DBPassword", cfg.DBPassword, "testpass")
	check("DBName", cfg.DBName, "testdb")
	check("RedisHost", cfg.RedisHost, "cache.example.com")
	check("RedisPort", cfg.RedisPort, "6380")
	check("RedisPassword", cfg.RedisPassword, "cachepass")
	check("SMTPHost", cfg.SMTPHost, "smtp.example.com")
	check("SMTPUser", cfg.SMTPUser, "mailer")
	check("SMTPPassword", cfg.SMTPPassword, "mailpass")
	check("MailFrom", cfg.MailFrom, "noreply@example.com")
	check("MailOwner", cfg.MailOwner, "owner@example.com")
	check("MediaRoot", cfg.MediaRoot, "/srv/media")
	check("CORSOrigins", cfg.CORSOrigins, "https://example.com")

	if cfg.SMTPPort != 2525 {
		t.Errorf("SMTPPort = %d, want 2525", cfg.SMTPPort)
	}
}

// TestLoad_ProductionGuards verifies that production mode rejects the default
// database password and missing mail settings.
func TestLoad_ProductionGuards(t *testing.T) {
	t.Run("rejects default password", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_PASSWORD", "")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("MAIL_FROM", "noreply@example.com")
		t.Setenv("MAIL_OWNER", "owner@example.com")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() succeeded with default password in production")
		}
		if !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
			t.Errorf("error %q does not mention POSTGRES_PASSWORD", err)
		}
	})

	t.Run("rejects missing mail settings", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_PASSWORD", "real-password")
		t.Setenv("SMTP_HOST", "")
		t.Setenv("MAIL_FROM", "")
		t.Setenv("MAIL_OWNER", "")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() succeeded without mail settings in production")
		}
	})

	t.Run("accepts full production config", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_PASSWORD", "real-password")
		t.Setenv("SMTP_HOST", "smtp.example.com")
		t.Setenv("MAIL_FROM", "noreply@example.com")
		t.Setenv("MAIL_OWNER", "owner@example.com")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned unexpected error: %v", err)
		}
		if cfg.IsDev() {
			t.Error("IsDev() = true in production")
		}
	})
}

// TestDSNAndAddr verifies the connection-string helpers.
func TestDSNAndAddr(t *testing.T) {
	cfg := &Config{
		Host: "localhost", Port: "8080",
		DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d",
	}
	if got, want := cfg.DSN(), "postgres://u:p@h:5432/d?sslmode=disable"; got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
	if got, want := cfg.Addr(), "localhost:8080"; got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}
