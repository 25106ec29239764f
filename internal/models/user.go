package models

import (
	"fmt"
	"time"
)

// User represents a registered account. The document key is derived from the
// email address, which makes the email the unique identity of the account.
type User struct {
	// UserID is the document key, "user::<email>".
	UserID string `json:"user_id"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	// Password is the bcrypt hash of the account password. Never the
	// plaintext, and never serialized into API responses.
	Password string `json:"password"`

	// Verified is set once the signup OTP has been confirmed. Unverified
	// accounts cannot log in.
	Verified bool `json:"verified"`

	// KYCVerified is reserved for vendor-side identity checks.
	KYCVerified bool `json:"kyc_verified"`

	// OTP is the pending signup verification code. Cleared on successful
	// verification (one-shot).
	OTP string `json:"otp,omitempty"`

	// RefreshToken is the single currently-valid refresh token. A new login
	// replaces it, invalidating the previous one (single-session model).
	RefreshToken string `json:"refresh_token,omitempty"`

	// ResetOTP and ResetOTPExpiry gate the password-reset flow. Both are
	// cleared once the reset completes.
	ResetOTP       string     `json:"reset_otp,omitempty"`
	ResetOTPExpiry *time.Time `json:"reset_otp_expiry,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// UserKey returns the document key for the given email.
func UserKey(email string) string {
	return fmt.Sprintf("user::%s", email)
}

// Profile is the caller-visible projection of a User, with every secret
// field stripped.
type Profile struct {
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Verified    bool      `json:"verified"`
	KYCVerified bool      `json:"kyc_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile returns the safe projection of the user.
func (u *User) Profile() Profile {
	return Profile{
		UserID:      u.UserID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		Verified:    u.Verified,
		KYCVerified: u.KYCVerified,
		CreatedAt:   u.CreatedAt,
	}
}
