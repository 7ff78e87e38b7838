package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/types"
)

func mustPatternRule(t *testing.T, from, to expr.Node, matchers map[string]Matcher) Rule {
	t.Helper()
	rule, err := CompilePatternRule(from, to, matchers)
	require.NoError(t, err)
	return rule
}

func anyType(expr.Node) bool { return true }

func TestApplyToNodeFirstRegisteredRuleWins(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)
	mul := reg.MustResolve(operators.Multiply)

	x, y := expr.NewPlaceholder("x"), expr.NewPlaceholder("y")
	dropZero := mustPatternRule(t, expr.NewCall(add, x, expr.LiteralOf(int32(0))), x, nil)
	toMul := mustPatternRule(t, expr.NewCall(add, x, y), expr.NewCall(mul, x, y), nil)

	node := expr.NewCall(add, expr.NewLeaf("a"), expr.LiteralOf(int32(0)))

	first := NewPeepholeOptimizer([]Rule{dropZero, toMul})
	assert.Equal(t, "L.a", first.ApplyToNode(node).String())

	// With the order reversed the broader rule shadows the narrower one.
	second := NewPeepholeOptimizer([]Rule{toMul, dropZero})
	assert.Equal(t, "math.multiply(L.a, 0)", second.ApplyToNode(node).String())
}

func TestApplyToNodeUnchangedWhenNoRuleFires(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)
	mul := reg.MustResolve(operators.Multiply)

	x := expr.NewPlaceholder("x")
	rule := mustPatternRule(t, expr.NewCall(add, x, expr.LiteralOf(int32(0))), x, nil)
	po := NewPeepholeOptimizer([]Rule{rule})

	mulNode := expr.NewCall(mul, expr.NewLeaf("a"), expr.NewLeaf("b"))
	assert.Same(t, expr.Node(mulNode), po.ApplyToNode(mulNode))

	leaf := expr.NewLeaf("a")
	assert.Same(t, expr.Node(leaf), po.ApplyToNode(leaf))
}

func TestKeylessRulesAreTriedForEveryNode(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)

	// A transform rule has no dispatch key: it must be considered both for
	// keyless nodes and inside every bucket, in registration order.
	renameA := NewTransformRule(func(n expr.Node) expr.Node {
		if leaf, ok := n.(*expr.Leaf); ok && leaf.Key() == "a" {
			return expr.NewLeaf("b")
		}
		return n
	})
	x := expr.NewPlaceholder("x")
	dropZero := mustPatternRule(t, expr.NewCall(add, x, expr.LiteralOf(int32(0))), x, nil)

	po := NewPeepholeOptimizer([]Rule{renameA, dropZero})

	assert.Equal(t, "L.b", po.ApplyToNode(expr.NewLeaf("a")).String())

	result := po.Apply(expr.NewCall(add, expr.NewLeaf("a"), expr.LiteralOf(int32(0))))
	assert.Equal(t, "L.b", result.String())
}

func TestApplyIsOnePostOrderSweep(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	f, err := reg.Register("test.f", 1, passThroughInfer)
	require.NoError(t, err)
	g, err := reg.Register("test.g", 1, passThroughInfer)
	require.NoError(t, err)

	x := expr.NewPlaceholder("x")
	unwrapG := mustPatternRule(t, expr.NewCall(g, x), x, nil)
	fToG := mustPatternRule(t, expr.NewCall(f, x), expr.NewCall(g, x), nil)
	po := NewPeepholeOptimizer([]Rule{unwrapG, fToG})

	// The sweep rewrites each node once and does not revisit a node's own
	// rewrite result, so f(a) stops at g(a) within a single Apply.
	result := po.Apply(expr.NewCall(f, expr.NewLeaf("a")))
	assert.Equal(t, "test.g(L.a)", result.String())

	// Children are rewritten before the parent: the inner f becomes g, and
	// the outer g rule then sees the rebuilt child.
	result = po.Apply(expr.NewCall(g, expr.NewCall(f, expr.NewLeaf("a"))))
	assert.Equal(t, "test.g(L.a)", result.String())
}

func TestApplyCascadesChildrenIntoParents(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)

	x := expr.NewPlaceholder("x")
	dropZero := mustPatternRule(t, expr.NewCall(add, x, expr.LiteralOf(int32(0))), x, nil)
	po := NewPeepholeOptimizer([]Rule{dropZero})

	zero := expr.LiteralOf(int32(0))
	nested := expr.NewCall(add, expr.NewCall(add, expr.NewLeaf("a"), zero), zero)
	assert.Equal(t, "L.a", po.Apply(nested).String())
}

func TestApplyRewritesSharedSubtreesConsistently(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)
	mul := reg.MustResolve(operators.Multiply)

	x := expr.NewPlaceholder("x")
	dropZero := mustPatternRule(t, expr.NewCall(add, x, expr.LiteralOf(int32(0))), x, nil)
	po := NewPeepholeOptimizer([]Rule{dropZero})

	shared := expr.NewCall(add, expr.NewLeaf("a"), expr.LiteralOf(int32(0)))
	root := expr.NewCall(mul, shared, shared)

	result := po.Apply(root)
	assert.Equal(t, "math.multiply(L.a, L.a)", result.String())
	call := result.(*expr.OperatorCall)
	assert.Same(t, call.Arg(0), call.Arg(1), "one shared subtree yields one shared rewrite")
}

func passThroughInfer(inputs []*types.Type) (*types.Type, error) {
	return inputs[0], nil
}
