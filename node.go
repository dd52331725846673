package huffcode

// Node is one node of a Huffman tree.  A Node is either a leaf, holding a
// character and its occurrence count, or a branch, holding the summed count
// of its two children.  A branch always has two real children, so
// Left == None identifies a leaf.
type Node struct {
	// Char is the character this leaf stands for.  Meaningless on branches.
	Char rune

	// Freq is the occurrence count of Char for leaves, or the sum of the
	// two children's Freq values for branches.
	Freq uint64

	// Left and Right are the child handles of a branch, both None on a
	// leaf.
	Left  Handle
	Right Handle
}

// IsLeaf reports whether n is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.Left == None
}
