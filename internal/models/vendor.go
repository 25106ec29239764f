package models

import "time"

// Vendor is a merchant that sessions and bills reference by id.
type Vendor struct {
	// VendorID is the caller-supplied document key.
	VendorID string `json:"vendor_id"`

	Name string `json:"name"`
	Type string `json:"type"`

	KYCVerified bool `json:"kyc_verified"`

	ContactInfo    map[string]string `json:"contact_info,omitempty"`
	PaymentAccount map[string]string `json:"payment_account,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
