package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// PresenceRules covers the presence/optionality algebra: has-checks on
// provably present values fold to true, has-checks distribute inward
// through presence_and/presence_or, and the mask-merge shape
// (a & c) | (b & !c) collapses to a conditional select.
func PresenceRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	has := reg.MustResolve(operators.Has)
	presenceAnd := reg.MustResolve(operators.PresenceAnd)
	presenceOr := reg.MustResolve(operators.PresenceOr)
	and := reg.MustResolve(operators.LogicalAnd)
	or := reg.MustResolve(operators.LogicalOr)
	not := reg.MustResolve(operators.LogicalNot)
	where := reg.MustResolve(operators.Where)
	x := expr.NewPlaceholder("x")
	a := expr.NewPlaceholder("a")
	b := expr.NewPlaceholder("b")
	c := expr.NewPlaceholder("c")

	type patternPair struct {
		from expr.Node
		to   expr.Node
		m    map[string]rewrite.Matcher
	}

	pairs := []patternPair{
		// has(x) -> true when x is provably present.
		{
			from: expr.NewCall(has, x),
			to:   expr.LiteralOf(true),
			m:    map[string]rewrite.Matcher{"x": presentScalar},
		},
		// has(a & c) -> has(a) and c
		{
			from: expr.NewCall(has, expr.NewCall(presenceAnd, a, c)),
			to:   expr.NewCall(and, expr.NewCall(has, a), c),
		},
		// has(a | b) -> has(a) or has(b)
		{
			from: expr.NewCall(has, expr.NewCall(presenceOr, a, b)),
			to:   expr.NewCall(or, expr.NewCall(has, a), expr.NewCall(has, b)),
		},
		// (a & c) | (b & !c) -> where(c, a, b); the repeated hole c makes
		// the two masks provably complementary.
		{
			from: expr.NewCall(presenceOr,
				expr.NewCall(presenceAnd, a, c),
				expr.NewCall(presenceAnd, b, expr.NewCall(not, c))),
			to: expr.NewCall(where, c, a, b),
			m: map[string]rewrite.Matcher{
				"a": optionalScalar,
				"b": optionalScalar,
			},
		},
	}

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
