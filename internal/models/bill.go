package models

import "time"

// Bill records a vendor bill against a session. The total is caller-supplied
// and deliberately NOT validated against the sum of items: the split engine
// trusts the caller's total for its arithmetic.
type Bill struct {
	// BillID is the document key (bare UUID).
	BillID string `json:"bill_id"`

	SessionID string `json:"session_id"`
	VendorID  string `json:"vendor_id"`

	TotalAmount float64 `json:"total_amount"`

	// Currency defaults to USD when the caller omits it.
	Currency string `json:"currency"`

	Items []Item `json:"items"`

	// AIValidation is always false; item-level AI assignment is not
	// implemented.
	AIValidation bool `json:"ai_validation"`

	CreatedAt time.Time `json:"created_at"`
}

// Item is a single line item on a bill.
type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
