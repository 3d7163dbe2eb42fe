package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Credential is the identity of an authenticated caller, verified upstream
type Credential struct {
	ID       string
	Username string
}

// IDGenerator produces the random part of a row identifier
type IDGenerator func() string

// DefaultIDGenerator generates random UUIDs
func DefaultIDGenerator() string {
	return uuid.NewString()
}

// NewID joins a table prefix and a generated suffix, e.g. "thread-<uuid>"
func NewID(prefix string, gen IDGenerator) string {
	return fmt.Sprintf("%s-%s", prefix, gen())
}
