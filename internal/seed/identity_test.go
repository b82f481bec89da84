package seed

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicID_Stable(t *testing.T) {
	a := DeterministicID("special-mentee-0")
	b := DeterministicID("special-mentee-0")
	assert.Equal(t, a, b)
}

func TestDeterministicID_DistinctKeys(t *testing.T) {
	assert.NotEqual(t, DeterministicID("special-mentee-0"), DeterministicID("special-mentee-1"))
}

// TestDeterministicID_SameShapeAsNewID verifies fixture ids parse as UUIDs,
// so they are interchangeable with ordinary ids in reference fields.
func TestDeterministicID_SameShapeAsNewID(t *testing.T) {
	_, err := uuid.Parse(DeterministicID("any-key"))
	require.NoError(t, err)
	_, err = uuid.Parse(NewID())
	require.NoError(t, err)
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
