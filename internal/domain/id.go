package domain

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Storage keys are UUIDv7; the API exposes them as ULID strings. Both are 16
// bytes, so the conversion is a relabeling.

func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the random source does, which is fatal anyway.
		panic(err)
	}
	return id
}

// FormatID renders a storage key as its public ULID form.
func FormatID(id uuid.UUID) string {
	return ulid.ULID(id).String()
}

// ParseID parses a public ULID back into a storage key.
func ParseID(s string) (uuid.UUID, error) {
	id, err := ulid.ParseStrict(s)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(id), nil
}
