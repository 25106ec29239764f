// Package models defines the core domain documents for ZeroTabs.
//
// Every entity is a JSON document owned exclusively by the record store;
// services hold no long-lived in-memory copies. JSON tags match the stored
// document field names, so a model round-trips through storage unchanged.
//
// # Key conventions
//
// Document keys are generated at creation time and immutable afterwards:
//   - User:    "user::<email>" (email is the lookup key)
//   - Session: "session::<uuid>"
//   - Payment: "payment::<uuid>"
//   - Bill:    bare UUID
//   - Split:   bare UUID
//   - Vendor:  caller-supplied vendor_id
//
// # Relationships
//
// Relationships use ID strings, never pointers, to avoid circular references.
// Splits and bills reference a session by id; there is no referential cleanup
// on deletion (deletion is not implemented).
package models
