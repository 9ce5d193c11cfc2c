package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration with sensible defaults for local dev.
type Config struct {
	Port            int           // HTTP port (default 8080)
	DBDriver        string        // sqlite, postgres, dynamodb or memory (default sqlite)
	DBPath          string        // sqlite file, e.g. ./data/videos.db or :memory:
	DatabaseURL     string        // postgres DSN
	DynamoTable     string        // DynamoDB table name (default videos)
	DynamoEndpoint  string        // optional DynamoDB endpoint override
	RateLimitRPS    int           // requests per second for mutating routes; 0 disables
	RateLimitBurst  int           // burst tokens (default = RateLimitRPS)
	CORSOrigins     []string      // allowed origins (default *)
	ShutdownTimeout time.Duration // graceful shutdown window (default 10s)
}

// FromEnv loads configuration from environment variables, falling back to defaults.
// Recognized: PORT, DB_DRIVER, DB_PATH, DATABASE_URL, DYNAMODB_TABLE,
// DYNAMODB_ENDPOINT, RATE_LIMIT, CORS_ORIGINS, SHUTDOWN_TIMEOUT.
// Also (best-effort) loads a local ".env" file first if present.
func FromEnv() Config {
	loadDotEnv()

	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	cfg := Config{
		Port:            getEnvInt("PORT", 8080),
		DBDriver:        driver,
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DynamoTable:     getEnv("DYNAMODB_TABLE", "videos"),
		DynamoEndpoint:  getEnv("DYNAMODB_ENDPOINT", ""),
		RateLimitRPS:    10,
		RateLimitBurst:  10,
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	if driver == "sqlite" {
		cfg.DBPath = getDBPath(getEnv("DB_PATH", "./data/videos.db"))
	}

	if rl, ok := os.LookupEnv("RATE_LIMIT"); ok && strings.TrimSpace(rl) != "" {
		cfg.RateLimitRPS, cfg.RateLimitBurst = parseRateLimit(rl)
	}
	if cfg.RateLimitBurst < cfg.RateLimitRPS {
		cfg.RateLimitBurst = cfg.RateLimitRPS
	}
	return cfg
}

// Validate reports configuration that cannot produce a working server.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.DBDriver {
	case "sqlite", "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for DB_DRIVER=postgres")
		}
	case "dynamodb":
		if c.DynamoTable == "" {
			return errors.New("DYNAMODB_TABLE is required for DB_DRIVER=dynamodb")
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getDBPath(p string) string {
	if p == ":memory:" {
		return p
	}
	// Normalize to OS-specific path; create parent dir if possible (best-effort).
	p = filepath.Clean(p)
	if dir := filepath.Dir(p); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	return p
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

var rateRe = regexp.MustCompile(`^\s*(\d+)\s*(?:rps)?\s*(?::\s*(\d+)\s*)?$`)

// parseRateLimit accepts "10", "10rps", or "10:20" (rps:burst). "0" disables
// limiting; unparseable input keeps the default of 10.
func parseRateLimit(s string) (rps, burst int) {
	s = strings.ToLower(strings.TrimSpace(s))
	m := rateRe.FindStringSubmatch(s)
	if len(m) == 0 {
		return 10, 10
	}
	rps, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		burst, _ = strconv.Atoi(m[2])
	} else {
		burst = rps
	}
	return rps, burst
}

// loadDotEnv loads KEY=VALUE pairs from a local ".env" file if present.
// Blank lines and lines starting with "#" or ";" are skipped, surrounding
// quotes are stripped, and variables already set in the environment win.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"'`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
