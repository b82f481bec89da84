package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInBatches_ChunkSizes verifies that 120 records with a ceiling of 50
// produce exactly three writes of 50, 50, and 20 records, in order.
func TestInBatches_ChunkSizes(t *testing.T) {
	records := make([]int, 120)
	var sizes []int

	err := InBatches(records, 50, func(chunk []int) error {
		sizes = append(sizes, len(chunk))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 50, 20}, sizes)
}

func TestInBatches_Empty(t *testing.T) {
	calls := 0
	err := InBatches(nil, 50, func(chunk []int) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, calls)
}

func TestInBatches_ExactMultiple(t *testing.T) {
	records := make([]int, 100)
	var sizes []int
	err := InBatches(records, 50, func(chunk []int) error {
		sizes = append(sizes, len(chunk))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 50}, sizes)
}

// TestInBatches_StopsOnError verifies the first failing chunk aborts the
// sequence without retrying or continuing.
func TestInBatches_StopsOnError(t *testing.T) {
	records := make([]int, 120)
	boom := errors.New("constraint violation")
	calls := 0

	err := InBatches(records, 50, func(chunk []int) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestInBatches_RejectsBadSize(t *testing.T) {
	err := InBatches([]int{1, 2, 3}, 0, func(chunk []int) error { return nil })
	assert.Error(t, err)
}
