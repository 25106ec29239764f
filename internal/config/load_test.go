package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, DefaultRefreshTTL, cfg.Auth.RefreshTTL)
	assert.Equal(t, DefaultResetOTPTTL, cfg.Auth.ResetOTPTTL)
	assert.Equal(t, LookupFail, cfg.Split.OnSessionLookupFailure)
	assert.False(t, cfg.IsDev())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  env: dev
auth:
  jwt_secret: file-secret
split:
  on_session_lookup_failure: default_participants
  default_participants:
    - user::a
    - user::b
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, LookupDefaultParticipants, cfg.Split.OnSessionLookupFailure)
	assert.Equal(t, []string{"user::a", "user::b"}, cfg.Split.DefaultParticipants)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0644))

	t.Setenv("ZEROTABS_SERVER_ADDR", ":7070")
	t.Setenv("ZEROTABS_AUTH_JWT_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad lookup policy", func(c *Config) {
			c.Split.OnSessionLookupFailure = "explode"
		}, true},
		{"fallback policy without participants", func(c *Config) {
			c.Split.OnSessionLookupFailure = LookupDefaultParticipants
		}, true},
		{"fallback policy with participants", func(c *Config) {
			c.Split.OnSessionLookupFailure = LookupDefaultParticipants
			c.Split.DefaultParticipants = []string{"user::a"}
		}, false},
		{"empty jwt secret", func(c *Config) {
			c.Auth.JWTSecret = ""
		}, true},
		{"otp echo in prod", func(c *Config) {
			c.Auth.OTPInResponse = true
		}, true},
		{"otp echo in dev", func(c *Config) {
			c.Server.Env = "dev"
			c.Auth.OTPInResponse = true
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Verify()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
