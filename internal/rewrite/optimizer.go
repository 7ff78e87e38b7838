package rewrite

import (
	"github.com/tliron/commonlog"

	"github.com/google/arolla-sub005/internal/errors"
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/types"
)

var log = commonlog.GetLogger("rewrite")

// MaxIterations caps the fixed-point loop. Termination is not guaranteed by
// construction; rule packs are responsible for strictly reducing rules and
// the cap turns a cyclic rule pair into a diagnosable error.
const MaxIterations = 100

// Optimizer drives a rule set to a fixed point. It is stateless per call
// and may be shared by reference across goroutines.
type Optimizer struct {
	set *PeepholeOptimizer
}

// NewOptimizer wraps a rule set in a fixed-point driver.
func NewOptimizer(set *PeepholeOptimizer) *Optimizer {
	return &Optimizer{set: set}
}

// Apply rewrites root until the fingerprint stops changing. It fails with a
// non-termination error when the iteration cap is exceeded and with a
// type-changed error when an iteration alters the expression's inferred
// static type. Both indicate a bug in a rule pack, not a bad input; the
// optimizer itself stays valid for further calls.
func (o *Optimizer) Apply(root expr.Node) (expr.Node, error) {
	previous := root
	previousType := expr.InferType(previous)
	lastBefore := root // pre-rewrite expression of the last completed iteration
	for iteration := 1; ; iteration++ {
		if iteration > MaxIterations {
			return nil, errors.NonTermination(MaxIterations,
				expr.RenderDebugSnippet(lastBefore), expr.RenderDebugSnippet(previous))
		}

		current := o.set.Apply(previous)
		currentType := expr.InferType(current)

		// A known type must be preserved exactly. An unknown type may
		// become known: literal instantiation can only refine.
		if previousType != nil && !previousType.Equal(currentType) {
			return nil, errors.TypeChanged(
				expr.RenderDebugSnippet(previous), expr.RenderDebugSnippet(current),
				typeLabel(previousType), typeLabel(currentType))
		}

		if expr.Equal(current, previous) {
			return current, nil
		}

		log.Debugf("iteration %d: %s -> %s", iteration,
			previous.Fingerprint(), current.Fingerprint())
		lastBefore = previous
		previous = current
		previousType = currentType
	}
}

func typeLabel(t *types.Type) string {
	if t == nil {
		return "unknown"
	}
	return t.String()
}
