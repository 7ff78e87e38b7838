package packs

import (
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// PackFactory produces one named group of related rules. Factories are pure
// configuration over the rewrite mechanism; they allocate no state beyond
// the rules themselves.
type PackFactory func(*operators.Registry) ([]rewrite.Rule, error)

// DefaultRules composes every builtin pack in its documented registration
// order. Order is observable: within one PatternKey bucket the first
// registered rule that changes a node wins, so callers composing their own
// pack lists own the resulting precedence.
func DefaultRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	factories := []PackFactory{
		ArithmeticIdentityRules,
		BooleanRules,
		PresenceRules,
		AssociativeRules,
		TupleRules,
		ShapeRules,
		ConditionalRules,
	}

	var rules []rewrite.Rule
	for _, factory := range factories {
		packRules, err := factory(reg)
		if err != nil {
			return nil, err
		}
		rules = append(rules, packRules...)
	}
	return rules, nil
}

// NewDefaultOptimizer builds a fixed-point optimizer over the default
// packs. The result is immutable and safe to share across goroutines;
// construct it once at startup and thread it explicitly to callers.
func NewDefaultOptimizer(reg *operators.Registry) (*rewrite.Optimizer, error) {
	rules, err := DefaultRules(reg)
	if err != nil {
		return nil, err
	}
	return rewrite.NewOptimizer(rewrite.NewPeepholeOptimizer(rules)), nil
}
