package main

import (
	"fmt"
	"net/url"
	"os"
)

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// dbURLFromEnv builds a Postgres connection URL from DB_URL or the
// individual DB_* environment variables, matching the app's config defaults.
func dbURLFromEnv() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbName := getEnv("DB_NAME", appName)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPass, dbHost, dbPort, dbName)
}

// redactPassword masks the password portion of a connection URL for logging
func redactPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		return "(unparseable connection string)"
	}
	if _, hasPass := u.User.Password(); hasPass {
		u.User = url.UserPassword(u.User.Username(), "***")
	}
	return u.String()
}
