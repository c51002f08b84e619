// Package ipgeolocation provides a client for the ipgeolocation.io astronomy API.
package ipgeolocation

import (
	"os"
	"time"
)

// Config holds configuration for the ipgeolocation.io API client.
// The API key is always externally supplied; it must never be hardcoded.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.ipgeolocation.io")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads ipgeolocation configuration from environment variables.
func LoadConfig() Config {
	baseURL := os.Getenv("IPGEO_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.ipgeolocation.io"
	}
	return Config{
		APIKey:  os.Getenv("IPGEO_API_KEY"),
		BaseURL: baseURL,
		Timeout: 10 * time.Second,
	}
}
