package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "DYNAMODB_TABLE",
		"DYNAMODB_ENDPOINT", "RATE_LIMIT", "CORS_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	if cfg.Port != 8080 || cfg.DBDriver != "sqlite" || cfg.DynamoTable != "videos" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if cfg.DBPath != filepath.Clean("./data/videos.db") {
		t.Fatalf("DBPath: %q", cfg.DBPath)
	}
	if cfg.RateLimitRPS != 10 || cfg.RateLimitBurst != 10 {
		t.Fatalf("rate limit: %d:%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Fatalf("CORSOrigins: %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout: %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/videos")
	t.Setenv("RATE_LIMIT", "5:20")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := FromEnv()
	if cfg.Port != 9090 || cfg.DBDriver != "postgres" || cfg.DBPath != "" {
		t.Fatalf("overrides: %+v", cfg)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 20 {
		t.Fatalf("rate limit: %d:%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("CORSOrigins: %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout: %v", cfg.ShutdownTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRateLimitZeroDisables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RATE_LIMIT", "0")
	cfg := FromEnv()
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("RateLimitRPS = %d, want 0", cfg.RateLimitRPS)
	}
}

func TestParseRateLimit(t *testing.T) {
	cases := []struct {
		in         string
		rps, burst int
	}{
		{"10", 10, 10},
		{"7rps", 7, 7},
		{"3:9", 3, 9},
		{" 4 : 8 ", 4, 8},
		{"junk", 10, 10},
	}
	for _, tc := range cases {
		rps, burst := parseRateLimit(tc.in)
		if rps != tc.rps || burst != tc.burst {
			t.Fatalf("%q: got %d:%d want %d:%d", tc.in, rps, burst, tc.rps, tc.burst)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		cfg Config
		ok  bool
	}{
		{Config{DBDriver: "memory"}, true},
		{Config{DBDriver: "postgres"}, false},
		{Config{DBDriver: "dynamodb", DynamoTable: "videos"}, true},
		{Config{DBDriver: "dynamodb"}, false},
		{Config{DBDriver: "mysql"}, false},
		{Config{DBDriver: "sqlite", Port: 70000}, false},
	}
	for _, tc := range cases {
		if err := tc.cfg.Validate(); (err == nil) != tc.ok {
			t.Fatalf("%+v: err=%v, want ok=%v", tc.cfg, err, tc.ok)
		}
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "# comment\nDB_DRIVER=\"memory\"\nPORT=1234\n; other\nbogus line\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("PORT", "5555")
	// t.Setenv restores DB_DRIVER after the test even though loadDotEnv sets it.
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")

	cfg := FromEnv()
	if cfg.DBDriver != "memory" {
		t.Fatalf("DB_DRIVER from .env: %q", cfg.DBDriver)
	}
	if cfg.Port != 5555 {
		t.Fatalf("real env should win, got port %d", cfg.Port)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
