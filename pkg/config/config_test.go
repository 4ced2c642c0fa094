package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvVars(t *testing.T) {
	tests := []struct {
		name            string
		mockEnv         map[string]string
		mockEnvFile     string
		expectSpotifyID string
		expectAPIURL    string
		expectMarket    string
	}{
		{
			name: "Valid environment variables",
			mockEnv: map[string]string{
				"SPOTIFY_CLIENT_ID": "test-spotify-id",
				"BACKEND_API_URL":   "https://backend.example.com/api",
			},
			expectSpotifyID: "test-spotify-id",
			expectAPIURL:    "https://backend.example.com/api",
			expectMarket:    "IN",
		},
		{
			name:            "Valid .env file",
			mockEnvFile:     "SPOTIFY_CLIENT_ID=test-env-spotify-id\nBACKEND_API_URL=https://backend-env.example.com/api\nSPOTIFY_MARKET=US\n",
			expectSpotifyID: "test-env-spotify-id",
			expectAPIURL:    "https://backend-env.example.com/api",
			expectMarket:    "US",
		},
		{
			name:            "Defaults apply with no configuration",
			expectSpotifyID: "",
			expectAPIURL:    "http://localhost:3001/api",
			expectMarket:    "IN",
		},
		{
			name: "Environment variable overrides .env file",
			mockEnv: map[string]string{
				"SPOTIFY_CLIENT_ID": "env-spotify-id",
				"BACKEND_API_URL":   "https://override.example.com/api",
			},
			mockEnvFile:     "SPOTIFY_CLIENT_ID=file-spotify-id\nBACKEND_API_URL=https://file.example.com/api\n",
			expectSpotifyID: "env-spotify-id",
			expectAPIURL:    "https://override.example.com/api",
			expectMarket:    "IN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Run each case from an isolated temp directory so .env files
			// from the repo never leak in.
			origDir, err := os.Getwd()
			require.NoError(t, err)
			tempDir := t.TempDir()
			require.NoError(t, os.Chdir(tempDir))
			defer func() {
				require.NoError(t, os.Chdir(origDir))
			}()

			os.Clearenv()
			for key, value := range tt.mockEnv {
				t.Setenv(key, value)
			}

			if tt.mockEnvFile != "" {
				envFile := filepath.Join(tempDir, ".env")
				require.NoError(t, os.WriteFile(envFile, []byte(tt.mockEnvFile), 0600))
			}

			conf := GetEnvVars()

			assert.Equal(t, tt.expectSpotifyID, conf.Spotify.ClientID)
			assert.Equal(t, tt.expectAPIURL, conf.Backend.APIURL)
			assert.Equal(t, tt.expectMarket, conf.Spotify.Market)
		})
	}
}

func TestBackendConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30, BackendConfig{}.Timeout())
	assert.Equal(t, 30, BackendConfig{HTTPTimeout: -1}.Timeout())
	assert.Equal(t, 10, BackendConfig{HTTPTimeout: 10}.Timeout())
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{
		Spotify: SpotifyConfig{ClientID: "id", ClientSecret: "secret", Market: "IN", Locale: "en_IN"},
		Backend: BackendConfig{APIURL: "http://localhost:3001/api", HTTPTimeout: 30},
	}
	assert.NoError(t, validateConfig(valid))

	invalid := &Config{
		Spotify: SpotifyConfig{Market: "IND"},
		Backend: BackendConfig{},
	}
	err := validateConfig(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend API URL is required")
	assert.Contains(t, err.Error(), "two-letter country code")
}
