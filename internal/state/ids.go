package state

import "github.com/google/uuid"

// NewID returns a fresh identifier for a scene element.
func NewID() string {
	return uuid.NewString()
}
