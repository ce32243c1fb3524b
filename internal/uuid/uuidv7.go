// Package uuid generates the time-ordered identifiers attached to requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 ids sort by creation time.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID in canonical form.
func IsValid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := googleuuid.Parse(s)
	return err == nil
}
