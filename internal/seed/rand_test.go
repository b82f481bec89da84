package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetween_Bounds(t *testing.T) {
	rz := NewSeededRandomizer(1)
	for i := 0; i < 1000; i++ {
		n := rz.Between(5, 9)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 9)
	}
}

func TestBetween_SwappedBounds(t *testing.T) {
	rz := NewSeededRandomizer(1)
	n := rz.Between(9, 5)
	assert.GreaterOrEqual(t, n, 5)
	assert.LessOrEqual(t, n, 9)
}

func TestBetween_Degenerate(t *testing.T) {
	rz := NewSeededRandomizer(1)
	assert.Equal(t, 7, rz.Between(7, 7))
}

func TestBool_Extremes(t *testing.T) {
	rz := NewSeededRandomizer(2)
	for i := 0; i < 100; i++ {
		assert.False(t, rz.Bool(0))
		assert.True(t, rz.Bool(1))
	}
}

func TestDateBetween_Bounds(t *testing.T) {
	rz := NewSeededRandomizer(3)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 1000; i++ {
		d := rz.DateBetween(start, end)
		assert.False(t, d.Before(start))
		assert.False(t, d.After(end))
	}
}

func TestDateBetween_EqualBounds(t *testing.T) {
	rz := NewSeededRandomizer(3)
	at := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, rz.DateBetween(at, at).Equal(at))
}

func TestPick_CoversSet(t *testing.T) {
	rz := NewSeededRandomizer(4)
	set := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(rz, set)] = true
	}
	assert.Len(t, seen, 3)
}

// TestPickWeighted_ZeroWeightExcluded verifies a zero-weight candidate is
// never drawn when positive weights exist.
func TestPickWeighted_ZeroWeightExcluded(t *testing.T) {
	rz := NewSeededRandomizer(5)
	choices := []Weighted[string]{
		{Value: "never", Weight: 0},
		{Value: "always", Weight: 10},
	}
	for i := 0; i < 1000; i++ {
		assert.Equal(t, "always", PickWeighted(rz, choices))
	}
}

// TestPickWeighted_FallbackFirst verifies the first element is the
// designated fallback when no weight can win.
func TestPickWeighted_FallbackFirst(t *testing.T) {
	rz := NewSeededRandomizer(6)
	choices := []Weighted[string]{
		{Value: "first", Weight: 0},
		{Value: "second", Weight: 0},
	}
	assert.Equal(t, "first", PickWeighted(rz, choices))
}

func TestPickWeighted_Normalizes(t *testing.T) {
	rz := NewSeededRandomizer(7)
	// Weights sum to 300, not 1; both candidates must still appear.
	choices := []Weighted[string]{
		{Value: "a", Weight: 200},
		{Value: "b", Weight: 100},
	}
	seen := map[string]int{}
	for i := 0; i < 3000; i++ {
		seen[PickWeighted(rz, choices)]++
	}
	assert.Greater(t, seen["a"], seen["b"])
	assert.Greater(t, seen["b"], 0)
}

func TestPickN_NoReplacement(t *testing.T) {
	rz := NewSeededRandomizer(8)
	set := []int{1, 2, 3, 4, 5}
	for i := 0; i < 100; i++ {
		out := PickN(rz, set, 3)
		require.Len(t, out, 3)
		seen := map[int]bool{}
		for _, v := range out {
			assert.False(t, seen[v], "duplicate element in sample")
			seen[v] = true
		}
	}
}

func TestPickN_NLargerThanSet(t *testing.T) {
	rz := NewSeededRandomizer(9)
	out := PickN(rz, []int{1, 2}, 10)
	assert.Len(t, out, 2)
}

func TestPickN_DoesNotMutateInput(t *testing.T) {
	rz := NewSeededRandomizer(10)
	set := []int{1, 2, 3, 4, 5}
	PickN(rz, set, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, set)
}

// TestSeededRandomizer_Reproducible verifies two Randomizers with the same
// seed yield identical sequences.
func TestSeededRandomizer_Reproducible(t *testing.T) {
	a := NewSeededRandomizer(42)
	b := NewSeededRandomizer(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Between(0, 1_000_000), b.Between(0, 1_000_000))
	}
}
