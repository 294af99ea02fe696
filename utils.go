package main

import (
	"time"

	"github.com/google/uuid"
)

// GenerateID mints ids for instruments created at the API boundary (cards,
// transactions, loans, branches).
func GenerateID() string {
	return uuid.NewString()
}

// DefaultCardExpiry is used when an account request carries no expiry:
// four years out, YYYY-MM-DD.
func DefaultCardExpiry() string {
	return time.Now().AddDate(4, 0, 0).Format("2006-01-02")
}

// Today returns the current date in the wire format, the default for
// transactions posted without an explicit date.
func Today() string {
	return time.Now().Format("2006-01-02")
}
