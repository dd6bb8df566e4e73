package utils

import "github.com/google/uuid"

// UUIDGenerator produces the temporary identifiers assigned to buffered
// entities and queue entries.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string. Version 7 ids are time-ordered, so
// identifiers sort in enqueue order, which keeps queue listings readable.
// If the v7 source fails (clock trouble), a random v4 is used instead.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
