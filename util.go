package huffcode

import (
	mathbits "math/bits"
)

// pathHint estimates a starting capacity for path buffers and traversal
// stacks: the depth of a balanced tree over n nodes.  Degenerate trees can
// run deeper; append handles the growth.
func pathHint(n int) int {
	if n <= 0 {
		return 0
	}
	return 64 - mathbits.LeadingZeros64(uint64(n))
}
