package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// ConditionalRules lowers generic conditionals: a literal condition
// collapses the conditional entirely, identical branches make the
// condition irrelevant, and a known scalar condition lowers core.where to
// the short-circuiting core.select primitive. The collapsing rules come
// first so a literal condition never reaches the lowering rule.
func ConditionalRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	where := reg.MustResolve(operators.Where)
	sel := reg.MustResolve(operators.Select)
	c := expr.NewPlaceholder("c")
	a := expr.NewPlaceholder("a")
	b := expr.NewPlaceholder("b")
	x := expr.NewPlaceholder("x")
	trueLit := expr.LiteralOf(true)
	falseLit := expr.LiteralOf(false)

	type patternPair struct {
		from expr.Node
		to   expr.Node
		m    map[string]rewrite.Matcher
	}

	var pairs []patternPair
	for _, op := range []*operators.Operator{where, sel} {
		pairs = append(pairs,
			patternPair{expr.NewCall(op, trueLit, a, b), a, nil},
			patternPair{expr.NewCall(op, falseLit, a, b), b, nil},
			patternPair{
				from: expr.NewCall(op, c, x, x),
				to:   x,
				m:    map[string]rewrite.Matcher{"c": scalarBool},
			},
		)
	}

	// where(c, a, b) -> select(c, a, b) when c is provably scalar, so the
	// untaken branch is never evaluated.
	pairs = append(pairs, patternPair{
		from: expr.NewCall(where, c, a, b),
		to:   expr.NewCall(sel, c, a, b),
		m:    map[string]rewrite.Matcher{"c": scalarBool},
	})

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
