// Package arolla rewrites expression DAGs with pattern-based peephole
// rules driven to a fixed point. The package is a thin facade over the
// internal engine: it wires the builtin operator registry and rule packs
// together and re-exports the types callers need to build expressions
// and custom rules.
package arolla

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
	"github.com/google/arolla-sub005/internal/rewrite/packs"
	"github.com/google/arolla-sub005/internal/types"
)

type (
	// Node is an immutable expression node compared by fingerprint.
	Node = expr.Node
	// Fingerprint is the content hash that serves as node identity.
	Fingerprint = expr.Fingerprint
	// Type is an inferred static expression type.
	Type = types.Type
	// Operator is a registered operator identity.
	Operator = operators.Operator
	// Registry maps operator names to identities.
	Registry = operators.Registry
	// Matcher is a per-hole predicate constraining what a placeholder binds.
	Matcher = rewrite.Matcher
	// Rule is a single peephole rewrite.
	Rule = rewrite.Rule
	// Optimizer drives a rule set to a fixed point.
	Optimizer = rewrite.Optimizer
)

// Builtin operator names, re-exported for registry lookups.
const (
	Add          = operators.Add
	Subtract     = operators.Subtract
	Multiply     = operators.Multiply
	Add4         = operators.Add4
	LogicalNot   = operators.LogicalNot
	LogicalAnd   = operators.LogicalAnd
	LogicalOr    = operators.LogicalOr
	Equal        = operators.Equal
	NotEqual     = operators.NotEqual
	Less         = operators.Less
	LessEqual    = operators.LessEqual
	Greater      = operators.Greater
	GreaterEqual = operators.GreaterEqual
	Has          = operators.Has
	PresenceAnd  = operators.PresenceAnd
	PresenceOr   = operators.PresenceOr
	Where        = operators.Where
	Select       = operators.Select
	MakeTuple    = operators.MakeTuple
	ShapeOf      = operators.ShapeOf
	Broadcast    = operators.Broadcast
)

// Scalar type descriptors, re-exported for typed leaves and custom rules.
var (
	BoolType    = types.BoolType
	Int32Type   = types.Int32Type
	Int64Type   = types.Int64Type
	Float32Type = types.Float32Type
	Float64Type = types.Float64Type
	BytesType   = types.BytesType
	TextType    = types.TextType
	ShapeType   = types.ShapeType
)

// OptionalOf returns the optional variant of t.
func OptionalOf(t *Type) *Type { return types.Optional(t) }

// ArrayOf returns the array type over elem.
func ArrayOf(elem *Type) *Type { return types.ArrayOf(elem) }

// TupleOf returns the tuple type with the given field types.
func TupleOf(fields ...*Type) *Type { return types.TupleOf(fields...) }

// NewRegistry returns a registry with all builtin operators installed.
func NewRegistry() *Registry {
	return operators.NewDefaultRegistry()
}

// NewOptimizer builds the default optimizer: every builtin rule pack over
// the given registry. The result is immutable and safe for concurrent use.
func NewOptimizer(reg *Registry) (*Optimizer, error) {
	return packs.NewDefaultOptimizer(reg)
}

// NewRuleOptimizer builds an optimizer over an explicit rule list. Rule
// order is the precedence order.
func NewRuleOptimizer(rules []Rule) *Optimizer {
	return rewrite.NewOptimizer(rewrite.NewPeepholeOptimizer(rules))
}

// CompileRule compiles a from/to template pair with optional per-hole
// matchers into a rule.
func CompileRule(from, to Node, matchers map[string]Matcher) (Rule, error) {
	return rewrite.CompilePatternRule(from, to, matchers)
}

// TransformRule wraps a pure rewrite function as a rule. The function must
// return its input unchanged when it does not apply.
func TransformRule(fn func(Node) Node) Rule {
	return rewrite.NewTransformRule(fn)
}

// Leaf creates a free variable of unknown type.
func Leaf(key string) Node { return expr.NewLeaf(key) }

// TypedLeaf creates a free variable with a declared type.
func TypedLeaf(key string, t *Type) Node { return expr.NewTypedLeaf(key, t) }

// Literal creates a literal node from a Go value.
func Literal(value any) Node { return expr.LiteralOf(value) }

// Placeholder creates a pattern hole. Placeholders only appear in rule
// templates, never in input expressions.
func Placeholder(key string) Node { return expr.NewPlaceholder(key) }

// Call creates an operator call over the given arguments.
func Call(op *Operator, args ...Node) Node { return expr.NewCall(op, args...) }

// InferType computes the static type of an expression, or nil when it is
// not fully determined.
func InferType(node Node) *Type { return expr.InferType(node) }

// CountNodes counts the distinct nodes of a DAG.
func CountNodes(node Node) int { return expr.CountNodes(node) }
