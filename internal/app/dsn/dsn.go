package dsn

import (
	"fmt"
	"os"
)

// FromEnv builds a postgres DSN from DB_* variables. DB_DSN, when set, wins.
// An empty string means the database is not configured.
func FromEnv() string {
	if v := os.Getenv("DB_DSN"); v != "" {
		return v
	}

	host, ok := os.LookupEnv("DB_HOST")
	if !ok || host == "" {
		return ""
	}
	port := getenv("DB_PORT", "5432")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	dbname := os.Getenv("DB_NAME")
	sslmode := getenv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, dbname, sslmode)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
