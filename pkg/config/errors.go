// Package config provides error definitions for configuration-related errors.
package config

import "errors"

// Configuration validation errors
var (
	// ErrMissingSpotifyClientID is returned when the Spotify client ID is not provided
	ErrMissingSpotifyClientID = errors.New("spotify client ID is required")

	// ErrMissingSpotifyClientSecret is returned when the Spotify client secret is not provided
	ErrMissingSpotifyClientSecret = errors.New("spotify client secret is required")

	// ErrMissingBackendURL is returned when the preview backend URL is not provided
	ErrMissingBackendURL = errors.New("preview backend API URL is required")
)
