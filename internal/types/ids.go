package types

import "github.com/google/uuid"

// NewRowID generates a UUIDv7 identifier for an editor row.
// Time-ordered IDs keep insertion order recoverable from the ID alone.
// Panics on clock regression (uuid.Must); acceptable for ID generation.
func NewRowID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// ParseAnalystID validates and normalizes an analyst identifier.
// Analyst IDs are UUIDs assigned by the identity system; rejecting malformed
// input here keeps bad IDs out of save payloads.
func ParseAnalystID(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
