package heapq

import (
	stdcmp "cmp"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func intCompare(a, b int, _ struct{}) int {
	return stdcmp.Compare(a, b)
}

func shuffled(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

func drain(t *testing.T, heap *[]int) []int {
	t.Helper()
	out := make([]int, 0, len(*heap))
	for {
		v, ok := Pop(heap, intCompare, struct{}{})
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestHeapifyDrainSorts(t *testing.T) {
	heap := shuffled(100, 1)

	expected := make([]int, 100)
	for i := range expected {
		expected[i] = i
	}

	Heapify(heap, intCompare, struct{}{})
	require.Equal(t, expected, drain(t, &heap))
}

func TestPushDrainMatchesHeapify(t *testing.T) {
	vals := shuffled(100, 2)

	expected := make([]int, 100)
	for i := range expected {
		expected[i] = i
	}

	heap := make([]int, 0, len(vals))
	for _, v := range vals {
		Push(&heap, v, intCompare, struct{}{})
	}
	require.Equal(t, expected, drain(t, &heap))
}

func TestHeapifyWithDuplicates(t *testing.T) {
	vals := []int{5, 1, 5, 3, 1, 1, 9, 3, 5}

	expected := append([]int(nil), vals...)
	sort.Ints(expected)

	heap := append([]int(nil), vals...)
	Heapify(heap, intCompare, struct{}{})
	require.Equal(t, expected, drain(t, &heap))
}

func TestPopEmpty(t *testing.T) {
	var heap []int
	v, ok := Pop(&heap, intCompare, struct{}{})
	require.False(t, ok)
	require.Zero(t, v)
	require.Empty(t, heap)
}

func TestPopSingle(t *testing.T) {
	heap := []int{7}
	v, ok := Pop(&heap, intCompare, struct{}{})
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = Pop(&heap, intCompare, struct{}{})
	require.False(t, ok)
}

// The elements are indices; their ordering keys live in the aux slice.  This
// is the arrangement the Huffman tree builder relies on, with arena handles
// for elements and the arena as context.
func TestAuxContextOrdering(t *testing.T) {
	keys := []uint64{50, 10, 40, 20, 30, 10}
	byKey := func(a, b int, keys []uint64) int {
		return stdcmp.Compare(keys[a], keys[b])
	}

	heap := []int{0, 1, 2, 3, 4, 5}
	Heapify(heap, byKey, keys)

	var got []uint64
	for {
		i, ok := Pop(&heap, byKey, keys)
		if !ok {
			break
		}
		got = append(got, keys[i])
	}
	require.Equal(t, []uint64{10, 10, 20, 30, 40, 50}, got)
}

func TestMixedPushPop(t *testing.T) {
	var heap []int
	Push(&heap, 4, intCompare, struct{}{})
	Push(&heap, 1, intCompare, struct{}{})
	Push(&heap, 3, intCompare, struct{}{})

	v, ok := Pop(&heap, intCompare, struct{}{})
	require.True(t, ok)
	require.Equal(t, 1, v)

	Push(&heap, 2, intCompare, struct{}{})
	Push(&heap, 0, intCompare, struct{}{})

	require.Equal(t, []int{0, 2, 3, 4}, drain(t, &heap))
}
