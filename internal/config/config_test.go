package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		sslMode     string
		jwtSecret   string
		dbPassword  string
		expectError bool
	}{
		{"Production with empty SSL mode", "production", "", "secure-secret-at-least-32-chars-long", "secure-password", true},
		{"Production with disable SSL mode", "production", "disable", "secure-secret-at-least-32-chars-long", "secure-password", true},
		{"Production with require SSL mode", "production", "require", "secure-secret-at-least-32-chars-long", "secure-password", false},
		{"Production with default JWT secret", "production", "require", "your-secret-key-change-in-production", "secure-password", true},
		{"Production with short JWT secret", "production", "require", "short", "secure-password", true},
		{"Production with default DB password", "production", "require", "secure-secret-at-least-32-chars-long", "password", true},
		{"Development with disable SSL mode", "development", "disable", "dev-secret", "password", false},
		{"Test with empty SSL mode", "test", "", "test-secret", "password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Env:           tt.env,
				DBSSLMode:     tt.sslMode,
				JWTSecret:     tt.jwtSecret,
				DBPassword:    tt.dbPassword,
				Port:          "8080",
				TokenTTLHours: 240,
				RedisURL:      "redis://localhost:6379",
			}

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_TokenTTL(t *testing.T) {
	c := &Config{
		Env:           "test",
		JWTSecret:     "test-secret",
		Port:          "8080",
		TokenTTLHours: 0,
	}
	assert.Error(t, c.Validate())
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 240, c.TokenTTLHours)
	assert.Equal(t, "disable", c.DBSSLMode)
}

func TestLoadConfig_SSLModeNormalization(t *testing.T) {
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("DB_SSLMODE")
	defer viper.Reset()

	os.Setenv("APP_ENV", "development")
	os.Setenv("DB_SSLMODE", "  DISABLE  ")

	c, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "disable", c.DBSSLMode)
}
