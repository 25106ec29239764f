package auth

import (
	"errors"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"valid", "longenough", nil},
		{"exactly 8", "12345678", nil},
		{"too short", "short", ErrWeakPassword},
		{"empty", "", ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct-horse" {
		t.Fatal("hash equals plaintext")
	}

	if err := VerifyPassword(hash, "correct-horse"); err != nil {
		t.Errorf("VerifyPassword(correct) = %v, want nil", err)
	}
	if err := VerifyPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("VerifyPassword(wrong) = %v, want ErrInvalidCredentials", err)
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP(OTPLength)
	if err != nil {
		t.Fatalf("GenerateOTP failed: %v", err)
	}
	if len(otp) != OTPLength {
		t.Errorf("len(otp) = %d, want %d", len(otp), OTPLength)
	}
	for _, c := range otp {
		if c < '0' || c > '9' {
			t.Errorf("otp %q contains non-digit %q", otp, c)
		}
	}
}
