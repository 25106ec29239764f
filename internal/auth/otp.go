package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the number of digits in generated one-time codes.
const OTPLength = 6

// GenerateOTP returns n crypto-random decimal digits.
func GenerateOTP(n int) (string, error) {
	digits := make([]byte, n)
	for i := range digits {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate otp: %w", err)
		}
		digits[i] = byte('0' + d.Int64())
	}
	return string(digits), nil
}
