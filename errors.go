package antimeridian

import "fmt"

// ErrEmptyRing is returned wherever a ring is required to have at least one
// vertex (§3's "every ring has ≥ 1 vertex" invariant) but doesn't.
var ErrEmptyRing = fmt.Errorf("ring must have at least one vertex")
