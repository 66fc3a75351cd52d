package domain

import "github.com/google/uuid"

// UUIDGenerator implements IDGenerator with random (v4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
