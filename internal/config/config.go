// Package config loads runtime configuration from environment variables.
// A .env file, when present, is loaded by the entrypoints before Load is
// called, so every knob works the same in development and deployment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds the runtime settings of the booking API.
type Config struct {
	Env          string        // application environment ("dev", "prod")
	Port         string        // HTTP port to listen on
	SaleDelay    time.Duration // artificial latency added to every sale
	TicketSecret string        // HS256 secret for signed ticket tokens

	// Database settings are optional: when DBHost is empty the server
	// runs on the seeded in-memory store.
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string
}

// Load reads the configuration.  APP_PORT is the only hard requirement;
// everything else has a development default.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         must("APP_PORT"),
		SaleDelay:    getdur("SALE_DELAY", 500*time.Millisecond),
		TicketSecret: getenv("TICKET_SECRET", "dev-ticket-secret"),
		DBUser:       os.Getenv("DB_USER"),
		DBPass:       os.Getenv("DB_PASS"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       getenv("DB_PORT", "3306"),
		DBName:       os.Getenv("DB_NAME"),
	}
}

// UseDatabase reports whether the MySQL store should be used.
func (c Config) UseDatabase() bool { return c.DBHost != "" && c.DBName != "" }

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}

func getint(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func getbool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}
