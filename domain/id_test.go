package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModelIDIsNotEmpty(t *testing.T) {
	id := NewModelID()
	assert.False(t, id.IsEmpty())
	assert.NotEmpty(t, id.String())
}

func TestNewModelIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewModelID(), NewModelID())
}

func TestModelIDIsEmpty(t *testing.T) {
	var id ModelID
	assert.True(t, id.IsEmpty())
}

func TestModelEnsureIDGeneratesOnce(t *testing.T) {
	m := &Model{}
	first := m.EnsureID()
	assert.False(t, first.IsEmpty())
	assert.Equal(t, first, m.ID)

	second := m.EnsureID()
	assert.Equal(t, first, second, "EnsureID must not regenerate an already-set ID")
}

func TestModelEnsureIDKeepsExplicitID(t *testing.T) {
	m := &Model{ID: ModelID("explicit-id")}
	assert.Equal(t, ModelID("explicit-id"), m.EnsureID())
}
