package config

import (
	"log"
	"os"
	"sync"
)

// AppConfig holds the process-level settings read from APP_NAME, APP_ENV,
// APP_PORT and APP_URL. Env gates the dev-only surfaces (pprof, error
// traces in responses).
type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

// LoadAppConfig reads the environment once; godotenv must have run first
// (cmd/server does this before anything else).
func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:    os.Getenv("APP_NAME"),
			Env:     env,
			Port:    os.Getenv("APP_PORT"),
			BaseURL: os.Getenv("APP_URL"),
		}
	})
	return appConfig
}
