// Package models defines the record schemas stored in the collection store.
// Records are plain JSON documents living inside whole-collection blobs, so
// there are no ORM tags here; field names match the persisted camelCase
// layout and dates are YYYY-MM-DD strings.
package models

// DateLayout is the wire format for all record dates.
const DateLayout = "2006-01-02"

// Record is implemented by every stored record type. IDs are opaque
// strings; global uniqueness is the only requirement.
type Record interface {
	RecordID() string
}
