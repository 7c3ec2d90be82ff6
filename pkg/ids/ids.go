// Package ids generates the opaque identifiers used in share links.
package ids

import (
	"crypto/rand"
	"encoding/hex"
)

// NewInviteID produces a random 32-character hex invitation id.
func NewInviteID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b)
}
