package rewrite

import "github.com/google/arolla-sub005/internal/expr"

// PeepholeOptimizer owns a fixed, ordered collection of rules with an index
// from PatternKey to candidate rules. It is immutable after construction
// and safe to share read-only across goroutines.
//
// Rule order is part of the contract: for one node, candidate rules are
// tried in registration order and the first rule that changes the node's
// fingerprint wins. Composing rule packs therefore makes pack order
// observable; callers own that order.
type PeepholeOptimizer struct {
	rules   []Rule
	buckets map[PatternKey][]int
	keyless []int
}

// NewPeepholeOptimizer builds a rule set. Rules without a derivable key
// (transform rules and hole-rooted patterns) become candidates for every
// node.
func NewPeepholeOptimizer(rules []Rule) *PeepholeOptimizer {
	po := &PeepholeOptimizer{
		rules:   rules,
		buckets: make(map[PatternKey][]int),
	}
	for i, rule := range rules {
		if key, ok := rule.Key(); ok {
			po.buckets[key] = append(po.buckets[key], i)
		} else {
			po.keyless = append(po.keyless, i)
		}
	}
	// Fold the keyless rules into every bucket so that one sorted slice per
	// key preserves registration order at dispatch time.
	for key, indices := range po.buckets {
		po.buckets[key] = mergeOrdered(indices, po.keyless)
	}
	return po
}

// mergeOrdered merges two ascending index slices into one.
func mergeOrdered(a, b []int) []int {
	merged := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}

// ApplyToNode tries the candidate rules for node's PatternKey in
// registration order and returns the first result with a different
// fingerprint, or node itself when no rule changes it.
func (o *PeepholeOptimizer) ApplyToNode(node expr.Node) expr.Node {
	candidates := o.keyless
	if key, ok := PatternKeyOf(node); ok {
		if bucket, ok := o.buckets[key]; ok {
			candidates = bucket
		}
	}
	for _, idx := range candidates {
		if result := o.rules[idx].TryApply(node); !expr.Equal(result, node) {
			return result
		}
	}
	return node
}

// Apply rewrites a whole tree in one post-order sweep: children first, then
// the rebuilt node itself. The sweep can fire many rules across the tree
// but is not iterated to a fixed point; that is the driver's job. Shared
// subtrees are rewritten once per call.
func (o *PeepholeOptimizer) Apply(root expr.Node) expr.Node {
	memo := make(map[expr.Fingerprint]expr.Node)
	return o.applyRec(root, memo)
}

func (o *PeepholeOptimizer) applyRec(node expr.Node, memo map[expr.Fingerprint]expr.Node) expr.Node {
	if cached, ok := memo[node.Fingerprint()]; ok {
		return cached
	}
	result := node
	if call, ok := node.(*expr.OperatorCall); ok {
		args := call.Args()
		rewritten := make([]expr.Node, len(args))
		changed := false
		for i, arg := range args {
			rewritten[i] = o.applyRec(arg, memo)
			if !expr.Equal(rewritten[i], arg) {
				changed = true
			}
		}
		if changed {
			result = expr.WithNewChildren(call, rewritten)
		}
	}
	result = o.ApplyToNode(result)
	memo[node.Fingerprint()] = result
	return result
}
