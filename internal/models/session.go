package models

import "time"

// Session statuses. A session only moves open -> closed.
const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// Session groups participants around a vendor visit. It gates which users
// may be auto-assigned a split: only participants of an open session can
// join, and the split engine reads the participant list at generation time.
type Session struct {
	// SessionID is the document key, "session::<uuid>".
	SessionID string `json:"session_id"`

	SessionName string `json:"session_name"`
	VendorID    string `json:"vendor_id"`

	// CreatedBy is the user key of the session creator, who is also the
	// initial (and at first only) participant.
	CreatedBy string `json:"created_by"`

	// Status is SessionOpen or SessionClosed. Participants may only be
	// gained while the session is open.
	Status string `json:"status"`

	// Participants holds user keys, order-irrelevant, no duplicates.
	Participants []string `json:"participants"`

	CreatedAt time.Time `json:"created_at"`
}

// HasParticipant reports whether userID is already in the session.
func (s *Session) HasParticipant(userID string) bool {
	for _, p := range s.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
