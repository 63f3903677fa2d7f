package config

import (
	"log"
	"time"
)

// Settings holds the aggregation service's environment-driven config.
type Settings struct {
	Port         string
	StoreURL     string
	SessionFile  string
	StoreTimeout time.Duration
}

// Load reads settings from the environment, with local-dev defaults that
// match the store's conventional :3000 address.
func Load() Settings {
	timeout, err := time.ParseDuration(envOrDefault("STORE_TIMEOUT", "10s"))
	if err != nil {
		log.Printf("⚠️  invalid STORE_TIMEOUT, using 10s: %v", err)
		timeout = 10 * time.Second
	}
	return Settings{
		Port:         envOrDefault("PORT", "8080"),
		StoreURL:     envOrDefault("STORE_URL", "http://localhost:3000"),
		SessionFile:  envOrDefault("SESSION_FILE", "data/current_user.json"),
		StoreTimeout: timeout,
	}
}
