// Package uuid stamps expedition results with identifiers and lets tests
// substitute predictable ones.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator is an interface for generating UUIDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new random (v4) UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Validate reports whether s parses as a UUID
func Validate(s string) bool {
	return uuid.Validate(s) == nil
}
