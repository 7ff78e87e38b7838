package rewrite

import "github.com/google/arolla-sub005/internal/expr"

// Transform is an arbitrary total rewrite function. A transform must return
// its input unchanged when it does not apply, and must be pure.
type Transform func(expr.Node) expr.Node

// Rule is a single peephole optimization: either a structural pattern rule
// or a transform rule. Exactly one of the two fields is set; TryApply
// dispatches on which. A non-match is a normal, silent outcome, never an
// error.
type Rule struct {
	pattern   *Pattern
	transform Transform
}

// NewPatternRule wraps a compiled pattern as a rule.
func NewPatternRule(p *Pattern) Rule {
	return Rule{pattern: p}
}

// CompilePatternRule compiles a (from, to, matchers) triple directly into a
// rule.
func CompilePatternRule(from, to expr.Node, matchers map[string]Matcher) (Rule, error) {
	p, err := CompilePattern(from, to, matchers)
	if err != nil {
		return Rule{}, err
	}
	return NewPatternRule(p), nil
}

// NewTransformRule wraps a transform function as a rule. Transform rules
// have no dispatch key and are tried for every node.
func NewTransformRule(fn Transform) Rule {
	return Rule{transform: fn}
}

// TryApply attempts to rewrite root and returns the result, or root itself
// when the rule does not apply.
func (r Rule) TryApply(root expr.Node) expr.Node {
	if r.pattern != nil {
		if bindings, ok := r.pattern.Match(root); ok {
			return r.pattern.Substitute(bindings)
		}
		return root
	}
	if r.transform != nil {
		return r.transform(root)
	}
	return root
}

// Key returns the rule's dispatch key when one is derivable.
func (r Rule) Key() (PatternKey, bool) {
	if r.pattern != nil {
		return r.pattern.Key()
	}
	return "", false
}
