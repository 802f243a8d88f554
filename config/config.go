package config

import (
	"fmt"
	"os"
)

// DevSecretKey signs sessions when SECRET_KEY is unset. Startup logs a
// warning so it never goes unnoticed outside local development.
const DevSecretKey = "dev-secret-change-me"

// Config holds all environment-derived settings, built once at startup
// and passed down explicitly.
type Config struct {
	Port      string
	SecretKey string
	Database  DatabaseConfig
}

// DatabaseConfig describes the optional external user store. Leaving it
// unconfigured is a supported mode: the portal falls back to the demo
// identity.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "5000"),
		SecretKey: getEnv("SECRET_KEY", DevSecretKey),
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

// Configured reports whether enough settings are present to attempt a
// connection. Password may legitimately be empty.
func (d DatabaseConfig) Configured() bool {
	return d.Host != "" && d.User != "" && d.Name != ""
}

func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
