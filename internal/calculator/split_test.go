package calculator

import (
	"math"
	"testing"
)

func TestEqualShare(t *testing.T) {
	tests := []struct {
		name         string
		totalAmount  float64
		participants int
		wantShare    float64
		wantSum      float64
		wantErr      bool
	}{
		{
			name:         "evenly divisible",
			totalAmount:  45.00,
			participants: 3,
			wantShare:    15.00,
			wantSum:      45.00,
		},
		{
			name:         "rounding leaves residual",
			totalAmount:  100.00,
			participants: 3,
			wantShare:    33.33,
			wantSum:      99.99,
		},
		{
			name:         "single participant",
			totalAmount:  19.99,
			participants: 1,
			wantShare:    19.99,
			wantSum:      19.99,
		},
		{
			name:         "rounds half up",
			totalAmount:  0.25,
			participants: 2,
			wantShare:    0.13,
			wantSum:      0.26,
		},
		{
			name:         "zero participants errors",
			totalAmount:  10.00,
			participants: 0,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share, err := EqualShare(tt.totalAmount, tt.participants)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("EqualShare(%v, %d) expected error, got none", tt.totalAmount, tt.participants)
				}
				return
			}
			if err != nil {
				t.Fatalf("EqualShare(%v, %d) unexpected error: %v", tt.totalAmount, tt.participants, err)
			}
			if math.Abs(share-tt.wantShare) > 1e-9 {
				t.Errorf("share = %v, want %v", share, tt.wantShare)
			}

			sum := 0.0
			for i := 0; i < tt.participants; i++ {
				sum += share
			}
			if math.Abs(Round2(sum)-tt.wantSum) > 1e-9 {
				t.Errorf("sum of shares = %v, want %v", Round2(sum), tt.wantSum)
			}
		})
	}
}

func TestEqualShare_ResidualBound(t *testing.T) {
	// For any total and n, the residual must stay within one cent per
	// participant beyond the first.
	totals := []float64{0.01, 1.00, 10.07, 45.00, 99.99, 100.00, 1234.56}
	for _, total := range totals {
		for n := 1; n <= 7; n++ {
			share, err := EqualShare(total, n)
			if err != nil {
				t.Fatalf("EqualShare(%v, %d): %v", total, n, err)
			}
			sum := share * float64(n)
			bound := 0.01*float64(n-1) + 1e-9
			if math.Abs(sum-total) > bound {
				t.Errorf("total %v, n=%d: |%v - %v| exceeds %v", total, n, sum, total, bound)
			}
			if !WithinRoundingTolerance(sum, total, n) {
				t.Errorf("WithinRoundingTolerance(%v, %v, %d) = false, want true", sum, total, n)
			}
		}
	}
}

func TestWithinRoundingTolerance(t *testing.T) {
	if WithinRoundingTolerance(99.99, 100.00, 3) != true {
		t.Error("expected 99.99 vs 100.00 with n=3 to be tolerated")
	}
	if WithinRoundingTolerance(99.00, 100.00, 3) != false {
		t.Error("expected 99.00 vs 100.00 with n=3 to be rejected")
	}
	if WithinRoundingTolerance(10.00, 10.00, 0) != false {
		t.Error("expected n=0 to be rejected")
	}
}
