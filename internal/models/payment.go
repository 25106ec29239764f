package models

import "time"

// Payment statuses.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentProcessed  = "processed"
)

// Payment is one attempted settlement per session. Payments are not linked
// back to individual splits.
type Payment struct {
	// PaymentID is the document key, "payment::<uuid>".
	PaymentID string `json:"payment_id"`

	SessionID string `json:"session_id"`
	VendorID  string `json:"vendor_id"`

	TotalAmount float64 `json:"total_amount"`
	Currency    string  `json:"currency"`

	Participants []PaymentParticipant `json:"participants"`

	// PaymentStatus is one of the Payment* constants. Processing is
	// simulated; there is no external settlement call.
	PaymentStatus string `json:"payment_status"`

	// ProcessedAt is nil until the payment is processed.
	ProcessedAt *time.Time `json:"processed_at"`

	CreatedAt time.Time `json:"created_at"`
}

// PaymentParticipant is one participant's share of a payment.
type PaymentParticipant struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}
