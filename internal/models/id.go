package models

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

var idPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

// NewID returns a new 24-character hexadecimal record identifier.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// IsValidID reports whether s is a well-formed record identifier.
func IsValidID(s string) bool {
	return idPattern.MatchString(s)
}
