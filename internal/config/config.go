// Package config resolves the server's environment-driven settings. The
// uplink CLI resolves its own settings through flags and the same SYKER_*
// environment variables via viper.
package config

import (
	"os"
	"strings"
)

// Config holds the resolved server settings.
type Config struct {
	// ListenAddr is the server bind address.
	ListenAddr string
	// FrontendDomain, when set, is the only origin allowed to call the API
	// from a browser.
	FrontendDomain string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		ListenAddr:     withDefault(os.Getenv("SYKER_LISTEN_ADDR"), ":8080"),
		FrontendDomain: strings.TrimSpace(os.Getenv("SYKER_FRONTEND_DOMAIN")),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
