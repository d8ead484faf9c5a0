package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for requests and sessions.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, used for trace ids.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateSecret returns a random UUIDv4. OAuth state values and pending
// registration keys must not be guessable, so they never use v7.
func (g *UUIDGenerator) GenerateSecret() string {
	return uuid.NewString()
}
