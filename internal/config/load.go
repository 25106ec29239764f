package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix.
// Example: ZEROTABS_AUTH_JWT_SECRET=... -> auth.jwt_secret.
const EnvPrefix = "ZEROTABS_"

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in that priority order (env wins).
func Load(filePath string) (*Config, error) {
	k := koanf.New(".")

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", filePath, err)
		}
	}

	// ZEROTABS_SECTION_KEY -> section.key. Section names contain no
	// underscores, so only the first one becomes a dot.
	transform := func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(s, "_", ".", 1)
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Verify rejects configurations the server cannot run with.
func (c *Config) Verify() error {
	switch c.Split.OnSessionLookupFailure {
	case LookupFail, LookupDefaultParticipants:
	default:
		return fmt.Errorf("split.on_session_lookup_failure must be %q or %q, got %q",
			LookupFail, LookupDefaultParticipants, c.Split.OnSessionLookupFailure)
	}
	if c.Split.OnSessionLookupFailure == LookupDefaultParticipants && len(c.Split.DefaultParticipants) == 0 {
		return fmt.Errorf("split.default_participants must be set when split.on_session_lookup_failure is %q",
			LookupDefaultParticipants)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must not be empty")
	}
	if !c.IsDev() && c.Auth.OTPInResponse {
		return fmt.Errorf("auth.otp_in_response is only allowed when server.env is dev")
	}
	return nil
}
