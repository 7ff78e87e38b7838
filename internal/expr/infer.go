package expr

import "github.com/google/arolla-sub005/internal/types"

// InferType returns the statically inferred type of n, or nil when the type
// cannot be determined. Literals and typed leaves carry their own types;
// untyped leaves and placeholders infer to unknown; an operator call infers
// through its operator once every child type is known. Inference failures
// (ill-typed calls) also yield unknown rather than an error: the rewrite
// engine never needs to distinguish the two.
func InferType(n Node) *types.Type {
	switch t := n.(type) {
	case *Literal:
		return t.typ
	case *Leaf:
		return t.typ
	case *OperatorCall:
		inputs := make([]*types.Type, len(t.args))
		for i, arg := range t.args {
			at := InferType(arg)
			if at == nil {
				return nil
			}
			inputs[i] = at
		}
		out, err := t.op.InferOutputType(inputs)
		if err != nil {
			return nil
		}
		return out
	default:
		return nil
	}
}
