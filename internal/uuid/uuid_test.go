package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := NewGoogleUUIDGenerator()

	a := gen.New()
	b := gen.New()

	_, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSequenceGenerator(t *testing.T) {
	gen := NewSequenceGenerator("evt")

	assert.Equal(t, "evt-1", gen.New())
	assert.Equal(t, "evt-2", gen.New())
}
