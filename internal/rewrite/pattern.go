package rewrite

import (
	set "github.com/hashicorp/go-set/v3"

	"github.com/google/arolla-sub005/internal/errors"
	"github.com/google/arolla-sub005/internal/expr"
)

// Matcher is a pure predicate constraining what a single hole may bind to.
// Matchers must not retain or mutate the candidate node.
type Matcher func(expr.Node) bool

// Pattern pairs a from-template with a to-template and optional per-hole
// matchers. Patterns are validated at construction and immutable afterwards.
type Pattern struct {
	from     expr.Node
	to       expr.Node
	matchers map[string]Matcher
}

// CompilePattern validates a (from, to, matchers) triple. It fails when a
// template contains a free-variable leaf, when the to-template references a
// hole the from-template never binds, when the from-template is a single
// unconstrained hole, or when a matcher key names no hole in from.
func CompilePattern(from, to expr.Node, matchers map[string]Matcher) (*Pattern, error) {
	holes := set.New[string](4)
	if err := collectTemplate(from, "from", holes); err != nil {
		return nil, err
	}

	if ph, ok := from.(*expr.Placeholder); ok {
		if matchers[ph.Key()] == nil {
			return nil, errors.TrivialMatch(ph.Key())
		}
	}

	toHoles := set.New[string](4)
	if err := collectTemplate(to, "to", toHoles); err != nil {
		return nil, err
	}
	for name := range toHoles.Items() {
		if !holes.Contains(name) {
			return nil, errors.UnknownPlaceholder(name)
		}
	}

	for key := range matchers {
		if !holes.Contains(key) {
			return nil, errors.UnknownMatcherKey(key)
		}
	}

	compiled := make(map[string]Matcher, len(matchers))
	for key, m := range matchers {
		compiled[key] = m
	}
	return &Pattern{from: from, to: to, matchers: compiled}, nil
}

// collectTemplate gathers hole names from a template and rejects leaves.
func collectTemplate(root expr.Node, template string, holes *set.Set[string]) error {
	var leafErr error
	expr.Visit(root, func(n expr.Node) {
		switch t := n.(type) {
		case *expr.Leaf:
			if leafErr == nil {
				leafErr = errors.LeafInTemplate(t.Key(), template)
			}
		case *expr.Placeholder:
			holes.Insert(t.Key())
		}
	})
	return leafErr
}

// Match runs the from-template against a candidate root and returns the
// binding environment on success. The environment is transient: it belongs
// to this single match attempt.
func (p *Pattern) Match(n expr.Node) (map[string]expr.Node, bool) {
	bindings := make(map[string]expr.Node)
	if !p.matchNode(p.from, n, bindings) {
		return nil, false
	}
	return bindings, true
}

// matchNode is a single deterministic structural comparison: it fails fast
// on the first mismatch and never backtracks across alternative bindings.
func (p *Pattern) matchNode(pat, n expr.Node, bindings map[string]expr.Node) bool {
	switch t := pat.(type) {
	case *expr.Placeholder:
		if prev, bound := bindings[t.Key()]; bound {
			// A repeated hole must bind to structurally equal subtrees.
			if !expr.Equal(prev, n) {
				return false
			}
		} else {
			bindings[t.Key()] = n
		}
		if m, ok := p.matchers[t.Key()]; ok && !m(n) {
			return false
		}
		return true
	case *expr.Literal:
		// Exact type and value: the fingerprint covers both.
		return expr.Equal(t, n)
	case *expr.OperatorCall:
		call, ok := n.(*expr.OperatorCall)
		if !ok || call.Op().Name() != t.Op().Name() || len(call.Args()) != len(t.Args()) {
			return false
		}
		for i, sub := range t.Args() {
			if !p.matchNode(sub, call.Arg(i), bindings) {
				return false
			}
		}
		return true
	default:
		// Leaves cannot occur in a validated template.
		return false
	}
}

// Substitute instantiates the to-template under a successful binding
// environment. Template parts off the substituted paths are shared, not
// copied.
func (p *Pattern) Substitute(bindings map[string]expr.Node) expr.Node {
	return substituteNode(p.to, bindings)
}

func substituteNode(tpl expr.Node, bindings map[string]expr.Node) expr.Node {
	switch t := tpl.(type) {
	case *expr.Placeholder:
		return bindings[t.Key()]
	case *expr.OperatorCall:
		args := make([]expr.Node, len(t.Args()))
		changed := false
		for i, sub := range t.Args() {
			args[i] = substituteNode(sub, bindings)
			if !expr.Equal(args[i], sub) {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return expr.NewCall(t.Op(), args...)
	default:
		return tpl
	}
}

// PatternKey is a cheap structural discriminator used to prune inapplicable
// rules before full matching. Sharing a key is necessary but not sufficient
// for a rule to match.
type PatternKey string

// PatternKeyOf derives the dispatch key for a node root: literals key on
// their exact type and value, operator calls on their operator identity.
// Other roots have no key and only keyless rules are candidates for them.
func PatternKeyOf(n expr.Node) (PatternKey, bool) {
	switch t := n.(type) {
	case *expr.Literal:
		return PatternKey("literal:" + t.Fingerprint().String()), true
	case *expr.OperatorCall:
		return PatternKey("op:" + t.Op().Name()), true
	default:
		return "", false
	}
}

// Key returns the dispatch key derived from the from-template's root, if
// any. A hole-rooted pattern has no key and is tried for every node.
func (p *Pattern) Key() (PatternKey, bool) {
	return PatternKeyOf(p.from)
}
