package packs

import (
	"github.com/google/arolla-sub005/internal/expr"
	"github.com/google/arolla-sub005/internal/operators"
	"github.com/google/arolla-sub005/internal/rewrite"
)

// TupleRules folds tuple projections applied directly to tuple
// constructors: get_nth[i](make_tuple(e0, ..., en)) -> ei. This is a
// transform rule rather than a pattern rule because the projection index
// lives in the operator identity and a fixed template cannot bind it.
func TupleRules(reg *operators.Registry) ([]rewrite.Rule, error) {
	makeTuple := reg.MustResolve(operators.MakeTuple)

	fold := func(n expr.Node) expr.Node {
		call, ok := n.(*expr.OperatorCall)
		if !ok {
			return n
		}
		op, ok := call.Op().(*operators.Operator)
		if !ok {
			return n
		}
		index, ok := operators.ProjectionIndex(op)
		if !ok || len(call.Args()) != 1 {
			return n
		}
		tuple, ok := call.Arg(0).(*expr.OperatorCall)
		if !ok || tuple.Op().Name() != makeTuple.Name() || index >= len(tuple.Args()) {
			return n
		}
		return tuple.Arg(index)
	}

	return []rewrite.Rule{rewrite.NewTransformRule(fold)}, nil
}
