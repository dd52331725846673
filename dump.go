package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Dump writes a programmer-readable dump of the code table to the given
// writer, one entry per distinct character, sorted by character.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	type entry struct {
		ch   rune
		code string
	}

	var entries []entry
	t.WalkLeaves(func(ch rune, code []byte) {
		entries = append(entries, entry{ch: ch, code: string(code)})
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ch < entries[j].ch
	})

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t%q: %q\n", e.ch, e.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
