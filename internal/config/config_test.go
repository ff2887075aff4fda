package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		env         map[string]string
		expectError bool
		check       func(t *testing.T, c Config)
	}{
		{
			name: "values from file with defaults",
			file: "DB_SOURCE=postgres://u:p@localhost:5432/groomers\nSERVER_ADDRESS=0.0.0.0:9090\n",
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "postgres://u:p@localhost:5432/groomers", c.DBSource)
				assert.Equal(t, "0.0.0.0:9090", c.ServerAddress)
				assert.Equal(t, "London", c.CityName)
				assert.Equal(t, 10*time.Minute, c.CacheTTL)
				assert.Equal(t, 587, c.SMTPPort)
				assert.False(t, c.StrictSlugAmbiguity)
				assert.False(t, c.EmailEnabled())
			},
		},
		{
			name: "environment overrides file",
			file: "DB_SOURCE=postgres://file\nCITY_NAME=London\n",
			env: map[string]string{
				"CITY_NAME":             "Bristol",
				"SMTP_HOST":             "smtp.example.com",
				"NOTIFICATION_EMAIL":    "owner@example.com",
				"STRICT_SLUG_AMBIGUITY": "true",
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "Bristol", c.CityName)
				assert.True(t, c.StrictSlugAmbiguity)
				assert.True(t, c.EmailEnabled())
			},
		},
		{
			name:        "missing database source",
			file:        "SERVER_ADDRESS=0.0.0.0:8080\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeEnvFile(t, tt.file)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(dir)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
