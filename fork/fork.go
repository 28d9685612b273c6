// Package fork relates chains to one another: it decides whether one chain is
// a prefix of another, and classifies any two chains as ancestor, descendant,
// equal, or unrelated. Relations carry witnesses, not bare booleans, so that
// callers can replay the links that separate two related chains.
package fork

import (
	"fmt"

	"github.com/renproject/lineage/chain"
)

// A Witness certifies that one chain (the base) is an ancestor-or-equal of
// another: the taller chain is rebuilt exactly by extending the base with the
// witnessed identifiers, oldest first. A witness with no steps certifies
// equality. Witnesses are linear certificates: steps are appended, never
// spliced or reordered.
type Witness struct {
	base chain.Chain
	ids  []chain.BlockID
}

// Base returns the prefix chain the witness starts from.
func (w Witness) Base() chain.Chain {
	return w.base
}

// NumSteps returns the number of links separating the base from the head. A
// witness with zero steps certifies equality.
func (w Witness) NumSteps() int {
	return len(w.ids)
}

// IDs returns the identifiers appended on top of the base, oldest first. The
// returned slice is freshly allocated.
func (w Witness) IDs() []chain.BlockID {
	ids := make([]chain.BlockID, len(w.ids))
	copy(ids, w.ids)
	return ids
}

// Head replays the witnessed identifiers over the base, rebuilding the chain
// the witness leads to.
func (w Witness) Head() chain.Chain {
	head := w.base
	for _, id := range w.ids {
		head = head.Extend(id)
	}
	return head
}

// String implements the `fmt.Stringer` interface for the Witness type.
func (w Witness) String() string {
	return fmt.Sprintf("Witness(Base=%v,Steps=%v)", w.base, w.ids)
}

// FindPrefix returns a witness that a is an ancestor-or-equal of b, or false
// when no such relation holds. A chain taller than b can never be a prefix of
// b, so the search short-circuits on height before touching any links. The
// walk unwinds the taller chain one link at a time in a loop, never by
// recursion, so chains of unbounded height cannot exhaust the stack. The cost
// is O(height(b) - height(a)) links plus the structural comparison at the
// base.
func FindPrefix(a, b chain.Chain) (Witness, bool) {
	if a.Height() > b.Height() {
		return Witness{}, false
	}
	ids := make([]chain.BlockID, b.Height()-a.Height())
	for i := len(ids) - 1; i >= 0; i-- {
		id, ok := b.Latest()
		if !ok {
			panic("invariant violation: chain above the origin has no latest block")
		}
		ids[i] = id
		b, _ = b.Parent()
	}
	if !a.Equal(b) {
		return Witness{}, false
	}
	return Witness{base: a, ids: ids}, true
}
