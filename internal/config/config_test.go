package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/invoicedash/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "acme")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "postgres://postgres:@db:5432/acme?sslmode=disable", cfg.ConnectionString())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	type testCase struct {
		name    string
		secret  string
		cost    int
		wantErr string
	}

	tests := []testCase{
		{name: "MissingSecret", secret: "", cost: 12, wantErr: "JWT_SECRET is required"},
		{name: "ShortSecret", secret: "short", cost: 12, wantErr: "at least 32"},
		{name: "CostTooLow", secret: strings.Repeat("x", 32), cost: 3, wantErr: "BCRYPT_COST"},
		{name: "CostTooHigh", secret: strings.Repeat("x", 32), cost: 15, wantErr: "BCRYPT_COST"},
		{name: "Valid", secret: strings.Repeat("x", 32), cost: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config.Config
			cfg.Auth.JWTSecret = tt.secret
			cfg.Auth.BcryptCost = tt.cost

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
