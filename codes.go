package huffcode

// Codes returns the mapping from each distinct character to its code string:
// the sequence of '0' (left) and '1' (right) choices taken from the root to
// the character's leaf.  The empty tree yields an empty map.
//
// When the tree holds exactly one distinct character, that character's leaf
// is the root and its code is the empty string.  A zero-bit code is not a
// usable prefix code for an actual decoder; callers that need to encode such
// degenerate input must handle it themselves.
func (t *Tree) Codes() map[rune]string {
	codes := make(map[rune]string)
	path := make([]byte, 0, pathHint(t.arena.Len()))
	t.appendCodes(t.root, &path, codes)
	return codes
}

// appendCodes is a depth-first walk carrying one shared path buffer.  Its
// recursion depth equals the tree depth; WalkLeaves is the explicit-stack
// alternative for call-stack constrained callers.
func (t *Tree) appendCodes(h Handle, path *[]byte, codes map[rune]string) {
	if h == None {
		return
	}
	node := t.arena.Get(h)
	if node.IsLeaf() {
		codes[node.Char] = string(*path)
		return
	}

	*path = append(*path, '0')
	t.appendCodes(node.Left, path, codes)
	*path = (*path)[:len(*path)-1]

	*path = append(*path, '1')
	t.appendCodes(node.Right, path, codes)
	*path = (*path)[:len(*path)-1]
}

// WalkLeaves visits every leaf in depth-first order, left child before
// right, calling visit with the leaf's character and its code.  It yields
// the same character/code pairs as Codes, but walks with an explicit stack,
// so its call-stack depth stays constant no matter how deep the tree is.
//
// The code slice passed to visit is reused between calls; visit must copy it
// to keep it.  A lone-leaf root is visited with a nil code.
func (t *Tree) WalkLeaves(visit func(ch rune, code []byte)) {
	if t.root == None {
		return
	}
	if node := t.arena.Get(t.root); node.IsLeaf() {
		visit(node.Char, nil)
		return
	}

	// stackItem.x tracks progress through each branch:
	//   x=0 → about to descend into the left child
	//   x=1 → about to descend into the right child
	//   x=2 → both children done
	type stackItem struct {
		h Handle
		x byte
	}

	hint := pathHint(t.arena.Len())
	stack := make([]stackItem, 0, hint)
	path := make([]byte, 0, hint)

	stack = append(stack, stackItem{h: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x == 2 {
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				// Drop the token appended when we descended
				// into this branch.  The root appended none.
				path = path[:len(path)-1]
			}
			continue
		}

		node := t.arena.Get(top.h)
		child, token := node.Left, byte('0')
		if x == 1 {
			child, token = node.Right, byte('1')
		}
		path = append(path, token)

		childNode := t.arena.Get(child)
		if childNode.IsLeaf() {
			visit(childNode.Char, path)
			path = path[:len(path)-1]
		} else {
			stack = append(stack, stackItem{h: child})
		}
	}
}

// CountRunes tallies the occurrence count of every distinct character in
// text.
func CountRunes(text string) map[rune]uint64 {
	freqs := make(map[rune]uint64)
	for _, ch := range text {
		freqs[ch]++
	}
	return freqs
}

// Generate counts the character frequencies of text, builds the Huffman
// tree, and returns the resulting code table.  It fails only when text has
// more distinct characters than MaxLeaves.
func Generate(text string) (map[rune]string, error) {
	t, err := Build(CountRunes(text))
	if err != nil {
		return nil, err
	}
	return t.Codes(), nil
}
