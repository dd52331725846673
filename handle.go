package huffcode

import (
	"math"
)

// Handle identifies a node in an Arena.  Handles are dense indices issued in
// creation order, starting at zero; they carry no ownership semantics — the
// arena exclusively owns all nodes.
type Handle uint16

// None is the reserved sentinel meaning "no node".  Callers must check a
// Handle against None before dereferencing it.
const None = Handle(math.MaxUint16)
