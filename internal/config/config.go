package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits comma-separated list values
	"time"    // time parses duration values
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Identifiers and secrets are strings, durations
// and costs are ints.  The default admin credentials are optional: when they
// are absent the startup bootstrap simply skips seeding.
type Config struct {
	Env           string   // application environment (e.g. "dev", "prod")
	Port          string   // HTTP port to listen on
	DBUser        string   // database username
	DBPass        string   // database password (optional)
	DBHost        string   // database host address
	DBPort        string   // database port number
	DBName        string   // database name
	JWTSecret     string   // secret used to sign JWTs
	TokenTTLMin   int      // access token time-to-live in minutes, one value for every issue path
	BcryptCost    int      // bcrypt cost for password hashing
	AdminEmail    string   // email of the seeded admin account (optional)
	AdminPassword string   // password of the seeded admin account (optional)
	CORSOrigins   []string // allowed CORS origins for the frontend
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:           must("APP_ENV"),               // environment (dev/test/prod)
		Port:          must("APP_PORT"),              // port to bind the HTTP server
		DBUser:        must("DB_USER"),               // database user
		DBPass:        os.Getenv("DB_PASS"),          // database password (empty allowed)
		DBHost:        must("DB_HOST"),               // database host
		DBPort:        must("DB_PORT"),               // database port
		DBName:        must("DB_NAME"),               // database name
		JWTSecret:     must("JWT_SECRET"),            // secret used for signing JWTs
		TokenTTLMin:   envInt("TOKEN_TTL_MIN", 1440), // 24h default, shared by register and login
		BcryptCost:    envInt("BCRYPT_COST", 10),     // bcrypt cost factor
		AdminEmail:    os.Getenv("DEFAULT_ADMIN_EMAIL"),
		AdminPassword: os.Getenv("DEFAULT_ADMIN_PASSWORD"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "*")),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// splitList splits a comma-separated env value into trimmed entries.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Shared env helpers, reused by the cache and throttle loaders below.

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
