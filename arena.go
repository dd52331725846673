package huffcode

import (
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrTooManyNodes is returned when a build would create more nodes than a
// Handle can address.
var ErrTooManyNodes = errors.New("huffcode: node count exceeds handle range")

// Arena is an append-only contiguous store of tree nodes, the sole owner of
// all node data for one build.  Nodes are referenced only through Handles and
// are never removed; the arena only grows, and handles are issued densely in
// creation order.  The zero value is an empty arena ready to use.
type Arena struct {
	nodes []Node
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// PushLeaf appends a leaf node and returns its Handle.
func (a *Arena) PushLeaf(ch rune, freq uint64) (Handle, error) {
	return a.push(Node{Char: ch, Freq: freq, Left: None, Right: None})
}

// PushBranch appends a branch node whose children are left and right.  Both
// children must be handles already issued by this arena; a branch never holds
// the None sentinel.
func (a *Arena) PushBranch(freq uint64, left, right Handle) (Handle, error) {
	assert.Assertf(left != None && int(left) < len(a.nodes), "left child handle %d was not issued by this arena (len %d)", left, len(a.nodes))
	assert.Assertf(right != None && int(right) < len(a.nodes), "right child handle %d was not issued by this arena (len %d)", right, len(a.nodes))
	return a.push(Node{Freq: freq, Left: left, Right: right})
}

// Get dereferences a Handle.  The caller must have checked h against None:
// dereferencing the sentinel, or a handle issued by a different arena, is a
// bug in the caller.
func (a *Arena) Get(h Handle) *Node {
	assert.Assertf(h != None, "dereference of the None handle")
	assert.Assertf(int(h) < len(a.nodes), "handle %d out of range, arena holds %d nodes", h, len(a.nodes))
	return &a.nodes[h]
}

func (a *Arena) push(n Node) (Handle, error) {
	// Index None is reserved, so the arena can hold at most None nodes.
	if len(a.nodes) >= int(None) {
		return None, ErrTooManyNodes
	}
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1), nil
}
