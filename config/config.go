package config

import "os"

type Config struct {
	Port        string
	NATSUrl     string
	Version     string
	Environment string
}

// Load reads the service configuration from the environment. Every key has
// a fallback; NATS_URL left empty disables event publishing.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		NATSUrl:     os.Getenv("NATS_URL"),
		Version:     getenv("SERVICE_VERSION", "1.0.0"),
		Environment: getenv("ENVIRONMENT", "development"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
