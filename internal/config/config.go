// Package config defines the server configuration structure.
//
// Configuration loads defaults first, then an optional YAML file, then
// ZEROTABS_-prefixed environment variables (later sources override earlier).
package config

import "time"

// Split-engine policies for session-lookup failures during automatic split
// generation.
const (
	// LookupFail propagates the session-lookup error to the caller.
	LookupFail = "fail"
	// LookupDefaultParticipants substitutes the configured default
	// participant list instead of failing.
	LookupDefaultParticipants = "default_participants"
)

// Config is the root configuration for the ZeroTabs server.
type Config struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Auth    AuthSection    `koanf:"auth"`
	Split   SplitSection   `koanf:"split"`
	SMTP    SMTPSection    `koanf:"smtp"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures the HTTP listener.
type ServerSection struct {
	Addr string `koanf:"addr"`

	// Env is "dev" or "prod". Dev relaxes a few guards (see
	// Auth.OTPInResponse).
	Env string `koanf:"env"`
}

// StorageSection configures the record store.
type StorageSection struct {
	// Path is the SQLite database file path.
	Path string `koanf:"path"`
}

// AuthSection configures the token and OTP lifecycle.
type AuthSection struct {
	// JWTSecret signs access and refresh tokens. Must be overridden in
	// production.
	JWTSecret string `koanf:"jwt_secret"`

	AccessTTL  time.Duration `koanf:"access_ttl"`
	RefreshTTL time.Duration `koanf:"refresh_ttl"`

	// ResetOTPTTL is the validity window of a password-reset OTP.
	ResetOTPTTL time.Duration `koanf:"reset_otp_ttl"`

	// OTPInResponse echoes the signup OTP in the HTTP response body.
	// A testing/demo convenience only; it is ignored unless server.env is
	// "dev".
	OTPInResponse bool `koanf:"otp_in_response"`
}

// SplitSection configures the split engine.
type SplitSection struct {
	// OnSessionLookupFailure is LookupFail or LookupDefaultParticipants.
	OnSessionLookupFailure string `koanf:"on_session_lookup_failure"`

	// DefaultParticipants is the substitute participant list used when
	// OnSessionLookupFailure is LookupDefaultParticipants.
	DefaultParticipants []string `koanf:"default_participants"`

	// ValidateTotals enables the invariant check that manual split amounts
	// sum to the bill total (within per-share rounding tolerance).
	ValidateTotals bool `koanf:"validate_totals"`
}

// SMTPSection configures the outbound mail notifier. When Host is empty the
// server falls back to a no-op notifier.
type SMTPSection struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	From     string `koanf:"from"`
}

// LogSection configures logging output.
type LogSection struct {
	// Level is debug, info, warn or error.
	Level string `koanf:"level"`
	// Format is "text" (colored, for development) or "json".
	Format string `koanf:"format"`
}

// Default configuration values.
const (
	DefaultAddr        = ":8080"
	DefaultEnv         = "prod"
	DefaultStoragePath = "./data/zerotabs.db"

	DefaultAccessTTL   = 15 * time.Minute
	DefaultRefreshTTL  = 7 * 24 * time.Hour
	DefaultResetOTPTTL = 10 * time.Minute

	DefaultSMTPPort = 587

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *Config {
	return &Config{
		Server: ServerSection{
			Addr: DefaultAddr,
			Env:  DefaultEnv,
		},
		Storage: StorageSection{
			Path: DefaultStoragePath,
		},
		Auth: AuthSection{
			JWTSecret:     "supersecret",
			AccessTTL:     DefaultAccessTTL,
			RefreshTTL:    DefaultRefreshTTL,
			ResetOTPTTL:   DefaultResetOTPTTL,
			OTPInResponse: false,
		},
		Split: SplitSection{
			OnSessionLookupFailure: LookupFail,
		},
		SMTP: SMTPSection{
			Port: DefaultSMTPPort,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// IsDev reports whether the server runs in development mode.
func (c *Config) IsDev() bool {
	return c.Server.Env == "dev"
}
