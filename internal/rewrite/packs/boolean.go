package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// BooleanRules covers boolean algebra: double-negation elimination,
// comparator inversion under logical_not, lowering comparisons against
// boolean literals, and and/or identity elements.
func BooleanRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	not := reg.MustResolve(operators.LogicalNot)
	and := reg.MustResolve(operators.LogicalAnd)
	or := reg.MustResolve(operators.LogicalOr)
	x := expr.NewPlaceholder("x")
	a := expr.NewPlaceholder("a")
	b := expr.NewPlaceholder("b")
	trueLit := expr.LiteralOf(true)
	falseLit := expr.LiteralOf(false)

	type patternPair struct {
		from expr.Node
		to   expr.Node
		m    map[string]rewrite.Matcher
	}

	pairs := []patternPair{
		// not(not(x)) -> x
		{expr.NewCall(not, expr.NewCall(not, x)), x, nil},
	}

	// Comparator inversion: not(a == b) -> a != b and friends.
	inversions := [][2]string{
		{operators.Equal, operators.NotEqual},
		{operators.NotEqual, operators.Equal},
		{operators.Less, operators.GreaterEqual},
		{operators.LessEqual, operators.Greater},
		{operators.Greater, operators.LessEqual},
		{operators.GreaterEqual, operators.Less},
	}
	for _, inv := range inversions {
		cmp := reg.MustResolve(inv[0])
		inverted := reg.MustResolve(inv[1])
		pairs = append(pairs, patternPair{
			from: expr.NewCall(not, expr.NewCall(cmp, a, b)),
			to:   expr.NewCall(inverted, a, b),
		})
	}

	// Comparisons against boolean literals collapse to the operand or its
	// negation. Restricted to provably two-valued operands: on an optional
	// bool the comparison result is optional and the operand is not an
	// equivalent.
	equal := reg.MustResolve(operators.Equal)
	boolOperand := map[string]rewrite.Matcher{"x": scalarBool}
	pairs = append(pairs,
		patternPair{expr.NewCall(equal, x, trueLit), x, boolOperand},
		patternPair{expr.NewCall(equal, trueLit, x), x, boolOperand},
		patternPair{expr.NewCall(equal, x, falseLit), expr.NewCall(not, x), boolOperand},
		patternPair{expr.NewCall(equal, falseLit, x), expr.NewCall(not, x), boolOperand},
	)

	// Identity elements: x and true -> x, x or false -> x.
	pairs = append(pairs,
		patternPair{expr.NewCall(and, x, trueLit), x, nil},
		patternPair{expr.NewCall(and, trueLit, x), x, nil},
		patternPair{expr.NewCall(or, x, falseLit), x, nil},
		patternPair{expr.NewCall(or, falseLit, x), x, nil},
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
