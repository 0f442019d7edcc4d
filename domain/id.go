package domain

import "github.com/google/uuid"

// ModelID identifies a Model for logging and report correlation only; it has
// no bearing on propagation semantics.
type ModelID string

// NewModelID generates a time-ordered identifier using UUID v7, falling back
// to v4 if v7 generation fails.
func NewModelID() ModelID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ModelID(id.String())
}

// String returns the string representation.
func (id ModelID) String() string {
	return string(id)
}

// IsEmpty reports whether the id is unset.
func (id ModelID) IsEmpty() bool {
	return id == ""
}
