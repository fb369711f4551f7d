package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("FEEDBACK_API_URL", "http://localhost:5000/comments")

	config, err := loadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "http://localhost:5000/comments", config.Feedback.APIURL)
	assert.Equal(t, "/feedback", config.Feedback.ConfirmationRoute)
	assert.Equal(t, 10*time.Second, config.Feedback.ClientTimeout)
	assert.Equal(t, 30*time.Second, config.Feedback.CacheTTL)
	assert.False(t, config.Feedback.MockAPIEnabled)
	assert.False(t, config.Redis.Enabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FEEDBACK_API_URL", "http://api.internal/comments")
	t.Setenv("CONFIRMATION_ROUTE", "/thanks")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "3s")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")

	config, err := loadConfig(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/thanks", config.Feedback.ConfirmationRoute)
	assert.Equal(t, 3*time.Second, config.Feedback.ClientTimeout)
	assert.True(t, config.Redis.Enabled())
	assert.Equal(t, "cache:6380", config.Redis.Addr())
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FEEDBACK_API_URL=http://file/comments\nPORT=9090\n"), 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://file/comments", config.Feedback.APIURL)
	assert.Equal(t, "9090", config.App.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing api url",
			env:  map[string]string{"FEEDBACK_API_URL": ""},
			want: "FEEDBACK_API_URL is required",
		},
		{
			name: "mock api without database",
			env:  map[string]string{"FEEDBACK_API_URL": "http://x", "MOCK_API_ENABLED": "true", "DB_HOST": ""},
			want: "DB_HOST is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
