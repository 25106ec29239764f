package models

import "time"

// Split approval statuses. The only transition is pending -> approved.
const (
	SplitPending  = "pending"
	SplitApproved = "approved"
)

// Split is one user's monetary obligation derived from a bill. Each split
// must be approved individually by its owning user.
type Split struct {
	// SplitID is the document key (bare UUID).
	SplitID string `json:"split_id"`

	BillID string `json:"bill_id"`
	UserID string `json:"user_id"`

	Amount float64 `json:"amount"`

	// Items are the line-item names assigned to this split. Empty for
	// auto-generated splits.
	Items []string `json:"items"`

	// ApprovalStatus is SplitPending or SplitApproved. Approval is terminal.
	ApprovalStatus string `json:"approval_status"`

	// AutoGenerated marks splits produced by the equal-split engine rather
	// than supplied manually.
	AutoGenerated bool `json:"auto_generated"`

	// ApprovedAt is nil until the owning user approves.
	ApprovedAt *time.Time `json:"approved_at"`

	CreatedAt time.Time `json:"created_at"`
}
