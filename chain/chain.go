// Package chain models a single linear blockchain as an immutable,
// height-tagged sequence of blocks terminating in a fixed origin. Chains are
// values: they are built once, by extending an existing chain with one new
// block identifier, and are never mutated afterwards. A chain's height always
// equals the number of links between it and the origin, because the height is
// recorded exactly once per construction.
package chain

import (
	"fmt"
)

// Height of a Chain: the number of links between its latest block and the
// origin.
type Height int64

// BlockID identifies the block appended by one link of a Chain. Identifiers
// are opaque non-negative integers; their provenance (for example, truncated
// block hashes) is owned by the caller, and no uniqueness across heights is
// assumed.
type BlockID uint64

// node is one link of a chain. Nodes are immutable after construction and are
// shared by every chain that extends the same prefix, so concurrent readers
// never race and forks never copy their common ancestry.
type node struct {
	parent *node
	id     BlockID
	height Height
}

// A Chain is an immutable, height-tagged sequence of blocks terminating in
// the origin. The zero value is the origin.
type Chain struct {
	latest *node
}

// Chains defines a wrapper type around the []Chain type.
type Chains []Chain

// Origin returns the unique chain of height 0.
func Origin() Chain {
	return Chain{}
}

// Extend returns a new chain one block taller than the receiver. It never
// fails, and never mutates the receiver: the new chain references the
// receiver's links without copying them.
func (c Chain) Extend(id BlockID) Chain {
	return Chain{latest: &node{parent: c.latest, id: id, height: c.Height() + 1}}
}

// Height of the chain. O(1): the height is recorded when the chain is built.
func (c Chain) Height() Height {
	if c.latest == nil {
		return 0
	}
	return c.latest.height
}

// IsOrigin returns true iff the chain is the origin.
func (c Chain) IsOrigin() bool {
	return c.latest == nil
}

// Parent returns the chain with its latest block removed. It returns false
// for the origin, which has no parent.
func (c Chain) Parent() (Chain, bool) {
	if c.latest == nil {
		return Chain{}, false
	}
	return Chain{latest: c.latest.parent}, true
}

// Latest returns the identifier of the latest block. It returns false for
// the origin, which has no blocks.
func (c Chain) Latest() (BlockID, bool) {
	if c.latest == nil {
		return 0, false
	}
	return c.latest.id, true
}

// IDs returns the block identifiers of the chain, oldest first. The returned
// slice is freshly allocated; mutating it cannot affect the chain.
func (c Chain) IDs() []BlockID {
	ids := make([]BlockID, c.Height())
	for n := c.latest; n != nil; n = n.parent {
		ids[n.height-1] = n.id
	}
	return ids
}

// Equal compares two chains structurally: the origin equals only the origin,
// and a link equals another link iff their identifiers are equal and their
// parents are equal. Equal is a true equivalence, and equal chains always
// have equal height. The walk is iterative, and chains that share a suffix by
// pointer compare in O(1) from the shared link onwards.
func (c Chain) Equal(other Chain) bool {
	a, b := c.latest, other.latest
	for {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if a.id != b.id || a.height != b.height {
			return false
		}
		a, b = a.parent, b.parent
	}
}

// Cast re-tags the chain with a height that the caller has externally proven
// to equal its true height. It is the identity on content: the result shares
// the receiver's structure and compares Equal to it. Casting to any other
// height is a programmer error.
func (c Chain) Cast(height Height) Chain {
	if height != c.Height() {
		panic(fmt.Sprintf("pre-condition violation: cannot cast chain of height %d to height %d", c.Height(), height))
	}
	return c
}

// String implements the `fmt.Stringer` interface for the Chain type.
func (c Chain) String() string {
	return fmt.Sprintf("Chain(Height=%d,IDs=%v)", c.Height(), c.IDs())
}

// An AnyChain pairs a chain with its height, for use when chains of
// heterogeneous height are stored together in one collection.
type AnyChain struct {
	Height Height
	Chain  Chain
}

// Wrap packages a chain together with its height.
func Wrap(c Chain) AnyChain {
	return AnyChain{Height: c.Height(), Chain: c}
}

// String implements the `fmt.Stringer` interface for the AnyChain type.
func (c AnyChain) String() string {
	return fmt.Sprintf("AnyChain(Height=%d,Chain=%v)", c.Height, c.Chain)
}
