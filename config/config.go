package config

import "os"

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads the configuration from environment variables and stores it
// in AppConfig. Missing database settings are not an error here; the
// gateway simply stays unavailable.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	AppConfig = Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         port,
	}
	return AppConfig
}
