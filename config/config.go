package config

import (
	"os"
	"strings"
)

const (
	defaultDriver = "sqlite"
	defaultDSN    = "cafes.db"
	defaultPort   = "8083"
	defaultAPIKey = "TopSecretAPIKey"
)

type Database struct {
	Driver string
	DSN    string
	Debug  bool
}

// Config is read once at startup from the environment.
type Config struct {
	Database       Database
	Debug          bool
	Port           string
	AllowedOrigins []string
	APIKey         string
	APIKeyHash     string
}

func Load() Config {
	debug := os.Getenv("GIN_MODE") != "release"

	driver := strings.ToLower(os.Getenv("DATABASE_DRIVER"))
	if driver == "" {
		driver = defaultDriver
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	origins := []string{"http://localhost:3000"}
	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	apiKey := os.Getenv("CAFE_API_KEY")
	if apiKey == "" {
		apiKey = defaultAPIKey
	}

	return Config{
		Database: Database{
			Driver: driver,
			DSN:    dsn,
			Debug:  debug,
		},
		Debug:          debug,
		Port:           port,
		AllowedOrigins: origins,
		APIKey:         apiKey,
		APIKeyHash:     os.Getenv("CAFE_API_KEY_HASH"),
	}
}
