package fork

import (
	"fmt"

	"github.com/renproject/lineage/chain"
)

// Relation defines the different ways two chains can relate to each other.
type Relation uint8

const (
	// Invalid defines an invalid Relation that should not be used.
	Invalid Relation = iota
	// Ancestor defines the Relation of a chain that is a strict prefix of
	// the chain it is compared against.
	Ancestor
	// Descendant defines the Relation of a chain that strictly extends the
	// chain it is compared against.
	Descendant
	// Equal defines the Relation of two structurally equal chains.
	Equal
	// Unrelated defines the Relation of two chains where neither is a prefix
	// of the other.
	Unrelated
)

// String implements the `fmt.Stringer` interface for the Relation type.
func (rel Relation) String() string {
	switch rel {
	case Ancestor:
		return "ancestor"
	case Descendant:
		return "descendant"
	case Equal:
		return "equal"
	case Unrelated:
		return "unrelated"
	default:
		panic(fmt.Errorf("invariant violation: unexpected relation=%d", uint8(rel)))
	}
}

// Relatedness is the outcome of classifying a pair of chains, carrying the
// witness that proves the relation whenever one exists. Exactly one Relation
// holds for any pair of chains.
type Relatedness struct {
	relation Relation
	witness  Witness
}

// Relation of the classified pair.
func (r Relatedness) Relation() Relation {
	return r.relation
}

// Witness proving the relation. It returns false when the chains are
// unrelated and no witness exists. For Ancestor the witness leads from the
// first chain to the second; for Descendant it leads from the second chain
// to the first; for Equal it has no steps.
func (r Relatedness) Witness() (Witness, bool) {
	if r.relation == Unrelated || r.relation == Invalid {
		return Witness{}, false
	}
	return r.witness, true
}

// String implements the `fmt.Stringer` interface for the Relatedness type.
func (r Relatedness) String() string {
	return fmt.Sprintf("Relatedness(Relation=%v)", r.relation)
}

// Classify relates chain a to chain b. Equality is checked first; the strict
// height inequalities on the prefix probes keep the four outcomes mutually
// exclusive. In particular, two distinct chains of equal height are always
// unrelated, since neither can strictly precede the other.
func Classify(a, b chain.Chain) Relatedness {
	if a.Equal(b) {
		return Relatedness{relation: Equal, witness: Witness{base: a}}
	}
	if witness, ok := FindPrefix(a, b); ok && a.Height() < b.Height() {
		return Relatedness{relation: Ancestor, witness: witness}
	}
	if witness, ok := FindPrefix(b, a); ok && b.Height() < a.Height() {
		return Relatedness{relation: Descendant, witness: witness}
	}
	return Relatedness{relation: Unrelated}
}
