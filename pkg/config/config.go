// Package config provides configuration management for the tunepeek
// application.
//
// Configuration is loaded from environment variables and .env files using
// github.com/caarlos0/env for parsing and github.com/joho/godotenv for .env
// loading, with path traversal protection around the .env lookup.
//
// Priority order:
//  1. Environment variables (highest priority)
//  2. .env file in the current working directory
//  3. Struct tag defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config represents the application configuration with nested service
// configurations.
type Config struct {
	Spotify SpotifyConfig `envPrefix:"SPOTIFY_"`
	Backend BackendConfig `envPrefix:"BACKEND_"`
}

// SpotifyConfig holds credentials and regional defaults for the Spotify
// Web API.
type SpotifyConfig struct {
	// ClientID is the Spotify application client ID.
	ClientID string `env:"CLIENT_ID"`

	// ClientSecret is the Spotify application client secret.
	ClientSecret string `env:"CLIENT_SECRET"` // #nosec G117 -- OAuth client secret, expected in config

	// Market is the ISO 3166-1 alpha-2 market applied to catalog requests.
	Market string `env:"MARKET" envDefault:"IN"`

	// Locale is the locale applied to browse/category requests.
	Locale string `env:"LOCALE" envDefault:"en_IN"`
}

// BackendConfig holds settings for the preview resolver backend.
type BackendConfig struct {
	// APIURL is the base URL of the preview resolver API.
	APIURL string `env:"API_URL" envDefault:"http://localhost:3001/api"`

	// HTTPTimeout is the timeout for backend requests in seconds.
	HTTPTimeout int `env:"HTTP_TIMEOUT" envDefault:"30"`
}

// GetEnvVars loads and returns the application configuration from
// environment variables and an optional .env file in the current working
// directory.
//
// The .env path is resolved and validated against directory traversal before
// loading. The function terminates the program with os.Exit(1) on parse or
// validation failures; missing Spotify credentials only produce warnings so
// commands that never reach the catalog still work.
func GetEnvVars() Config {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Printf("Error getting current working directory: %s\n", err)
		os.Exit(1)
	}

	envPath := filepath.Join(cwd, ".env")

	// Ensure the path stays within the working directory (prevent traversal)
	cleanEnvPath, err := filepath.Abs(envPath)
	if err != nil {
		fmt.Printf("Error resolving .env file path: %s\n", err)
		os.Exit(1)
	}
	cleanCwd, err := filepath.Abs(cwd)
	if err != nil {
		fmt.Printf("Error resolving current directory: %s\n", err)
		os.Exit(1)
	}
	relPath, err := filepath.Rel(cleanCwd, cleanEnvPath)
	if err != nil || strings.Contains(relPath, "..") {
		fmt.Printf("Error: .env file path traversal detected\n")
		os.Exit(1)
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Error loading .env file: %s\n", err)
			os.Exit(1)
		}
	}

	var conf Config
	if err := env.Parse(&conf); err != nil {
		fmt.Printf("Error parsing configuration from environment: %s\n", err)
		os.Exit(1)
	}

	if err := validateConfig(&conf); err != nil {
		fmt.Printf("Configuration validation error: %s\n", err)
		fmt.Println("Please check your configuration and try again.")
		os.Exit(1)
	}

	return conf
}

// Timeout returns the backend HTTP timeout in seconds, falling back to the
// default when unset.
func (b BackendConfig) Timeout() int {
	if b.HTTPTimeout <= 0 {
		return 30
	}
	return b.HTTPTimeout
}

// validateConfig validates the configuration
func validateConfig(conf *Config) error {
	var errors []string

	// Missing Spotify credentials warn but don't fail: preview-only commands
	// never touch the catalog.
	if conf.Spotify.ClientID == "" {
		fmt.Println("Warning: SPOTIFY_CLIENT_ID is not set. Catalog commands will not be able to connect to Spotify.")
	}
	if conf.Spotify.ClientSecret == "" {
		fmt.Println("Warning: SPOTIFY_CLIENT_SECRET is not set. Catalog commands will not be able to connect to Spotify.")
	}

	if conf.Backend.APIURL == "" {
		errors = append(errors, "backend API URL is required")
	}
	if conf.Backend.HTTPTimeout <= 0 {
		errors = append(errors, "backend HTTP timeout must be greater than 0")
	}
	if len(conf.Spotify.Market) != 2 {
		errors = append(errors, "spotify market must be a two-letter country code")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
