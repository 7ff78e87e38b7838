package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
	"github.com/google/arolla-sub005/internal/types"
)

// ArithmeticIdentityRules removes additive and multiplicative identity
// elements: x + 0 -> x and x * 1 -> x in both operand orders, one rule pair
// per numeric kind. The matcher pins the variable's scalar kind to the
// identity literal's kind so a rewrite never crosses types; optional and
// array values of the same kind are covered by the same rules.
func ArithmeticIdentityRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	add := reg.MustResolve(operators.Add)
	mul := reg.MustResolve(operators.Multiply)
	x := expr.NewPlaceholder("x")

	identities := []struct {
		kind types.Kind
		zero any
		one  any
	}{
		{types.Int32, int32(0), int32(1)},
		{types.Int64, int64(0), int64(1)},
		{types.Float32, float32(0), float32(1)},
		{types.Float64, float64(0), float64(1)},
	}

	var rules []rewrite.Rule
	for _, id := range identities {
		zero := expr.LiteralOf(id.zero)
		one := expr.LiteralOf(id.one)
		matchers := map[string]rewrite.Matcher{"x": scalarKindIs(id.kind)}

		for _, from := range []expr.Node{
			expr.NewCall(add, x, zero),
			expr.NewCall(add, zero, x),
			expr.NewCall(mul, x, one),
			expr.NewCall(mul, one, x),
		} {
			rule, err := rewrite.CompilePatternRule(from, x, matchers)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// AssociativeRules folds chains of binary adds into the 4-ary add4
// primitive to shrink tree depth. Three from-shapes map to one to-template;
// the balanced shape is registered first so it wins on trees where several
// shapes overlap.
func AssociativeRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	add := reg.MustResolve(operators.Add)
	add4 := reg.MustResolve(operators.Add4)
	a := expr.NewPlaceholder("a")
	b := expr.NewPlaceholder("b")
	c := expr.NewPlaceholder("c")
	d := expr.NewPlaceholder("d")

	to := expr.NewCall(add4, a, b, c, d)
	froms := []expr.Node{
		// balanced: (a+b) + (c+d)
		expr.NewCall(add, expr.NewCall(add, a, b), expr.NewCall(add, c, d)),
		// left-linear: ((a+b)+c) + d
		expr.NewCall(add, expr.NewCall(add, expr.NewCall(add, a, b), c), d),
		// right-linear: a + (b+(c+d))
		expr.NewCall(add, a, expr.NewCall(add, b, expr.NewCall(add, c, d))),
	}

	var rules []rewrite.Rule
	for _, from := range froms {
		rule, err := rewrite.CompilePatternRule(from, to, nil)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
