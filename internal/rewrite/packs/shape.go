package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// ShapeRules fuses broadcast-to-shape wrappers: a pointwise operator over
// two operands broadcast to the same shape becomes a single broadcast of
// the pointwise operator, and redundant broadcast/shape_of round-trips
// collapse.
func ShapeRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	broadcast := reg.MustResolve(operators.Broadcast)
	shapeOf := reg.MustResolve(operators.ShapeOf)
	x := expr.NewPlaceholder("x")
	y := expr.NewPlaceholder("y")
	s := expr.NewPlaceholder("s")

	type patternPair struct {
		from expr.Node
		to   expr.Node
		m    map[string]rewrite.Matcher
	}

	var pairs []patternPair

	// op(broadcast(x, s), broadcast(y, s)) -> broadcast(op(x, y), s).
	// The repeated hole s only fuses operands expanded to the same shape.
	for _, name := range []string{operators.Add, operators.Subtract, operators.Multiply} {
		op := reg.MustResolve(name)
		pairs = append(pairs, patternPair{
			from: expr.NewCall(op,
				expr.NewCall(broadcast, x, s),
				expr.NewCall(broadcast, y, s)),
			to: expr.NewCall(broadcast, expr.NewCall(op, x, y), s),
		})
	}

	pairs = append(pairs,
		// shape_of(broadcast(x, s)) -> s
		patternPair{
			from: expr.NewCall(shapeOf, expr.NewCall(broadcast, x, s)),
			to:   s,
			m:    map[string]rewrite.Matcher{"s": shapeTyped},
		},
		// broadcast(x, shape_of(x)) -> x: re-expanding an array to its own
		// shape is the identity.
		patternPair{
			from: expr.NewCall(broadcast, x, expr.NewCall(shapeOf, x)),
			to:   x,
			m:    map[string]rewrite.Matcher{"x": arrayTyped},
		},
	)

	var rules []rewrite.Rule
	for _, p := range pairs {
		rule, err := rewrite.CompilePatternRule(p.from, p.to, p.m)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
