package array

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortMutableDefault(t *testing.T) {
	a, err := NewWith(TagNumber, nums(3, 1, 2))
	require.NoError(t, err)

	a.SortMutable(nil)
	assert.Equal(t, []float64{1, 2, 3}, toFloats(t, a))
}

func TestSortMutableComparator(t *testing.T) {
	a, err := NewWith(TagNumber, nums(1, 3, 2))
	require.NoError(t, err)

	a.SortMutable(func(x, y Value) bool {
		return x.Data.(float64) > y.Data.(float64)
	})
	assert.Equal(t, []float64{3, 2, 1}, toFloats(t, a))
}

func TestSortIdempotent(t *testing.T) {
	a, err := NewWith(TagNumber, nums(4, 2, 3, 1))
	require.NoError(t, err)

	a.SortMutable(nil)
	want := toFloats(t, a)
	a.SortMutable(nil)
	assert.Equal(t, want, toFloats(t, a))
}

func TestSortDoesNotMutateReceiver(t *testing.T) {
	// Regression: the non-mutating variant must copy the backing store
	// before partitioning, never alias it into the sort.
	a, err := NewWith(TagNumber, nums(3, 1, 2))
	require.NoError(t, err)

	s := a.Sort(nil)
	assert.Equal(t, []float64{1, 2, 3}, toFloats(t, s))
	assert.Equal(t, []float64{3, 1, 2}, toFloats(t, a))

	// And the two stores stay independent afterwards.
	require.NoError(t, s.Push(Number(9)))
	assert.Equal(t, 3, a.Len())
}

func TestSortRandomAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(50)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = float64(rng.Intn(100))
		}
		a, err := NewWith(TagNumber, nums(xs...))
		require.NoError(t, err)

		a.SortMutable(nil)
		sort.Float64s(xs)
		assert.Equal(t, xs, toFloats(t, a))
	}
}

func TestSortMixedKindsDefaultOrder(t *testing.T) {
	a, err := NewWith(TagAny, []Value{String("b"), Number(2), Boolean(true), Nil, String("a"), Boolean(false), Number(1)})
	require.NoError(t, err)

	a.SortMutable(nil)

	got := make([]string, 0, a.Len())
	for v := range a.Values() {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"nil", "false", "true", "1", "2", `"a"`, `"b"`}, got)
}

func TestSortEmptyAndSingle(t *testing.T) {
	a := New(TagNumber)
	a.SortMutable(nil)
	assert.Equal(t, 0, a.Len())

	b, err := NewWith(TagNumber, nums(1))
	require.NoError(t, err)
	b.SortMutable(nil)
	assert.Equal(t, []float64{1}, toFloats(t, b))
}
