package huffcode

import (
	stdcmp "cmp"
	"fmt"

	"github.com/chronos-tachyon/huffcode/heapq"
)

// MaxLeaves is the largest number of distinct characters one build can
// accept.  Building over N leaves creates at most 2N-1 nodes, all of which
// must fit the Handle's integer width.
const MaxLeaves = (int(None) + 1) / 2

// Tree is a Huffman tree built from a frequency table.  A Tree is immutable
// once built; the arena holding its nodes lives exactly as long as the Tree.
// A Tree built from zero characters has a None root.
type Tree struct {
	arena Arena
	root  Handle
}

// compareFreq orders arena handles by the frequency of the node they refer
// to, resolved through the arena as the heap's auxiliary context.  Frequency
// ties are left to heap mechanics; no secondary key is applied, so the
// resulting order is not stable with respect to character or insertion
// order.
func compareFreq(a, b Handle, arena *Arena) int {
	return stdcmp.Compare(arena.Get(a).Freq, arena.Get(b).Freq)
}

// Build constructs the Huffman tree for the given frequency table.  Each
// distinct character becomes one leaf node; the leaves are then merged
// pairwise, smallest frequencies first, until a single root remains.
//
// Exactly one distinct character makes that character's leaf the root
// directly, with no branch above it.  An empty table yields a tree with a
// None root.
func Build(freqs map[rune]uint64) (*Tree, error) {
	if len(freqs) > MaxLeaves {
		return nil, fmt.Errorf("huffcode: %d distinct characters: %w", len(freqs), ErrTooManyNodes)
	}

	t := &Tree{root: None}

	heap := make([]Handle, 0, len(freqs))
	for ch, freq := range freqs {
		h, err := t.arena.PushLeaf(ch, freq)
		if err != nil {
			return nil, err
		}
		heap = append(heap, h)
	}
	heapq.Heapify(heap, compareFreq, &t.arena)

	for {
		first, ok := heapq.Pop(&heap, compareFreq, &t.arena)
		if !ok {
			// Heap already empty: zero distinct characters.
			return t, nil
		}
		second, ok := heapq.Pop(&heap, compareFreq, &t.arena)
		if !ok {
			t.root = first
			return t, nil
		}

		freq := t.arena.Get(first).Freq + t.arena.Get(second).Freq
		merged, err := t.arena.PushBranch(freq, first, second)
		if err != nil {
			return nil, err
		}
		heapq.Push(&heap, merged, compareFreq, &t.arena)
	}
}

// NumNodes returns the total number of nodes in the tree, leaves and
// branches together.
func (t *Tree) NumNodes() int {
	return t.arena.Len()
}
