package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/rewrite"
	"github.com/google/arolla-sub005/internal/types"
)

// Matcher helpers shared by the packs. All of them require the candidate's
// type to be inferable: an unconstrained rewrite on an untyped subtree
// could change the expression's meaning once types become known.

// scalarKindIs accepts nodes whose underlying scalar kind is exactly kind,
// under any optional or array wrapper.
func scalarKindIs(kind types.Kind) rewrite.Matcher {
	return func(n expr.Node) bool {
		t := expr.InferType(n)
		return t != nil && t.ScalarKind() == kind
	}
}

// scalarBool accepts nodes inferred as plain non-optional bool.
func scalarBool(n expr.Node) bool {
	t := expr.InferType(n)
	return t != nil && t.Equal(types.BoolType)
}

// presentScalar accepts nodes whose inferred type is a non-optional scalar,
// i.e. values that are provably present.
func presentScalar(n expr.Node) bool {
	t := expr.InferType(n)
	return t != nil && t.IsScalar()
}

// optionalScalar accepts nodes whose inferred type is an optional scalar.
func optionalScalar(n expr.Node) bool {
	t := expr.InferType(n)
	return t != nil && t.IsOptional()
}

// arrayTyped accepts nodes inferred as arrays.
func arrayTyped(n expr.Node) bool {
	t := expr.InferType(n)
	return t != nil && t.Kind() == types.Array
}

// shapeTyped accepts nodes inferred as shapes.
func shapeTyped(n expr.Node) bool {
	t := expr.InferType(n)
	return t != nil && t.Kind() == types.Shape
}
