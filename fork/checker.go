package fork

import (
	"go.uber.org/zap"

	"github.com/renproject/lineage/chain"
)

// A Checker wraps the pure prefix and classification functions with logging.
// It holds no mutable state, so one Checker is safe for concurrent use across
// any number of goroutines.
type Checker struct {
	opts Options
}

// New returns a Checker using the given options.
func New(opts Options) Checker {
	return Checker{opts: opts}
}

// FindPrefix behaves exactly like the package-level FindPrefix, logging the
// outcome of the search at debug level.
func (checker Checker) FindPrefix(a, b chain.Chain) (Witness, bool) {
	witness, ok := FindPrefix(a, b)
	checker.opts.Logger.Debug("prefix search",
		zap.Int64("heightA", int64(a.Height())),
		zap.Int64("heightB", int64(b.Height())),
		zap.Bool("found", ok),
	)
	return witness, ok
}

// Classify behaves exactly like the package-level Classify, logging the
// relation at debug level.
func (checker Checker) Classify(a, b chain.Chain) Relatedness {
	relatedness := Classify(a, b)
	checker.opts.Logger.Debug("classify",
		zap.Int64("heightA", int64(a.Height())),
		zap.Int64("heightB", int64(b.Height())),
		zap.Stringer("relation", relatedness.Relation()),
	)
	return relatedness
}
