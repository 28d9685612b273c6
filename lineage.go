// Package lineage models a single linear blockchain as an immutable,
// height-indexed chain of blocks, and defines the comparison algebra that
// relates two such chains: structural equality, the prefix (ancestor)
// relation, and the four-way relatedness classification used by fork-choice
// reasoning. All operations are pure and safe for concurrent use.
package lineage

import (
	"github.com/renproject/lineage/chain"
	"github.com/renproject/lineage/fork"
)

type (
	Height      = chain.Height
	BlockID     = chain.BlockID
	Chain       = chain.Chain
	Chains      = chain.Chains
	AnyChain    = chain.AnyChain
	Witness     = fork.Witness
	Relation    = fork.Relation
	Relatedness = fork.Relatedness
	Checker     = fork.Checker
	Options     = fork.Options
)

// Origin returns the unique chain of height 0.
func Origin() Chain {
	return chain.Origin()
}

// FindPrefix returns a witness that a is an ancestor-or-equal of b, or false
// when no such relation holds.
func FindPrefix(a, b Chain) (Witness, bool) {
	return fork.FindPrefix(a, b)
}

// Classify relates chain a to chain b as ancestor, descendant, equal, or
// unrelated. The relation carries a witness whenever one exists.
func Classify(a, b Chain) Relatedness {
	return fork.Classify(a, b)
}
