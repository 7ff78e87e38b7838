package operators

import (
	"fmt"

	"github.com/google/arolla-sub005/internal/types"
)

// Builtin operator names. Comparisons follow three-valued semantics on
// optional inputs: the result is optional whenever an input is.
const (
	Add      = "math.add"
	Subtract = "math.subtract"
	Multiply = "math.multiply"
	Add4     = "math.add4"

	LogicalNot = "bool.logical_not"
	LogicalAnd = "bool.logical_and"
	LogicalOr  = "bool.logical_or"

	Equal        = "bool.equal"
	NotEqual     = "bool.not_equal"
	Less         = "bool.less"
	LessEqual    = "bool.less_equal"
	Greater      = "bool.greater"
	GreaterEqual = "bool.greater_equal"

	Has         = "core.has"
	PresenceAnd = "core.presence_and"
	PresenceOr  = "core.presence_or"

	Where  = "core.where"
	Select = "core.select"

	MakeTuple  = "core.make_tuple"
	GetNthBase = "core.get_nth"

	ShapeOf   = "core.shape_of"
	Broadcast = "core.broadcast"
)

// InitializeBuiltins registers the builtin operator catalogue.
func (r *Registry) InitializeBuiltins() {
	mustRegister := func(name string, arity int, infer InferFn) {
		if _, err := r.Register(name, arity, infer); err != nil {
			panic(err)
		}
	}

	mustRegister(Add, 2, inferPointwiseNumeric)
	mustRegister(Subtract, 2, inferPointwiseNumeric)
	mustRegister(Multiply, 2, inferPointwiseNumeric)
	mustRegister(Add4, 4, inferPointwiseNumeric)

	mustRegister(LogicalNot, 1, inferPointwiseBool)
	mustRegister(LogicalAnd, 2, inferPointwiseBool)
	mustRegister(LogicalOr, 2, inferPointwiseBool)

	for _, name := range []string{Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual} {
		mustRegister(name, 2, inferComparison)
	}

	mustRegister(Has, 1, inferHas)
	mustRegister(PresenceAnd, 2, inferPresenceAnd)
	mustRegister(PresenceOr, 2, inferPresenceOr)

	mustRegister(Where, 3, inferConditional(false))
	mustRegister(Select, 3, inferConditional(true))

	mustRegister(MakeTuple, -1, inferMakeTuple)

	mustRegister(ShapeOf, 1, inferShapeOf)
	mustRegister(Broadcast, 2, inferBroadcast)
}

func scalarOf(kind types.Kind) *types.Type {
	switch kind {
	case types.Bool:
		return types.BoolType
	case types.Int32:
		return types.Int32Type
	case types.Int64:
		return types.Int64Type
	case types.Float32:
		return types.Float32Type
	case types.Float64:
		return types.Float64Type
	case types.Bytes:
		return types.BytesType
	case types.Text:
		return types.TextType
	default:
		return nil
	}
}

// mergeWrappers combines the optional/array wrappers of pointwise inputs:
// any array input makes the result an array, otherwise any optional input
// makes it optional. All inputs must share one scalar kind.
func mergeWrappers(inputs []*types.Type, result types.Kind) (*types.Type, error) {
	base := scalarOf(result)
	if base == nil {
		return nil, fmt.Errorf("no scalar type for kind %s", result)
	}
	isArray := false
	isOptional := false
	for _, in := range inputs {
		switch in.Kind() {
		case types.Array:
			isArray = true
		case types.Tuple, types.Shape, types.Invalid:
			return nil, fmt.Errorf("pointwise operator applied to %s", in)
		default:
			if in.IsOptional() {
				isOptional = true
			}
		}
	}
	if isArray {
		return types.ArrayOf(base), nil
	}
	if isOptional {
		return types.Optional(base), nil
	}
	return base, nil
}

func commonScalarKind(inputs []*types.Type) (types.Kind, error) {
	kind := types.Invalid
	for _, in := range inputs {
		k := in.ScalarKind()
		if k == types.Invalid {
			return types.Invalid, fmt.Errorf("%s has no scalar kind", in)
		}
		if kind == types.Invalid {
			kind = k
		} else if k != kind {
			return types.Invalid, fmt.Errorf("mixed scalar kinds %s and %s", kind, k)
		}
	}
	return kind, nil
}

func inferPointwiseNumeric(inputs []*types.Type) (*types.Type, error) {
	kind, err := commonScalarKind(inputs)
	if err != nil {
		return nil, err
	}
	switch kind {
	case types.Int32, types.Int64, types.Float32, types.Float64:
	default:
		return nil, fmt.Errorf("arithmetic requires a numeric kind, got %s", kind)
	}
	return mergeWrappers(inputs, kind)
}

func inferPointwiseBool(inputs []*types.Type) (*types.Type, error) {
	kind, err := commonScalarKind(inputs)
	if err != nil {
		return nil, err
	}
	if kind != types.Bool {
		return nil, fmt.Errorf("logical operator requires bool, got %s", kind)
	}
	return mergeWrappers(inputs, types.Bool)
}

func inferComparison(inputs []*types.Type) (*types.Type, error) {
	if _, err := commonScalarKind(inputs); err != nil {
		return nil, err
	}
	return mergeWrappers(inputs, types.Bool)
}

// inferHas accepts any scalar or optional scalar and yields a full bool:
// presence of a value is always known.
func inferHas(inputs []*types.Type) (*types.Type, error) {
	switch inputs[0].Kind() {
	case types.Tuple, types.Array, types.Shape, types.Invalid:
		return nil, fmt.Errorf("core.has is not defined for %s", inputs[0])
	}
	return types.BoolType, nil
}

// inferPresenceAnd masks a value by a full-bool condition; the result is
// always optional since the condition may be false.
func inferPresenceAnd(inputs []*types.Type) (*types.Type, error) {
	value, cond := inputs[0], inputs[1]
	kind := value.ScalarKind()
	if kind == types.Invalid || value.Kind() == types.Array {
		return nil, fmt.Errorf("core.presence_and is not defined for %s", value)
	}
	if !cond.Equal(types.BoolType) {
		return nil, fmt.Errorf("core.presence_and condition must be bool, got %s", cond)
	}
	return types.Optional(scalarOf(kind)), nil
}

// inferPresenceOr picks the first present value; the result is optional
// only when both sides are.
func inferPresenceOr(inputs []*types.Type) (*types.Type, error) {
	a, b := inputs[0], inputs[1]
	kindA, kindB := a.ScalarKind(), b.ScalarKind()
	if kindA == types.Invalid || kindA != kindB || a.Kind() == types.Array || b.Kind() == types.Array {
		return nil, fmt.Errorf("core.presence_or is not defined for %s and %s", a, b)
	}
	if a.IsOptional() && b.IsOptional() {
		return types.Optional(scalarOf(kindA)), nil
	}
	return scalarOf(kindA), nil
}

// inferConditional types core.where and core.select. Both branches must
// have the same type; select additionally requires a scalar non-optional
// condition since it guarantees short-circuit evaluation.
func inferConditional(shortCircuit bool) InferFn {
	return func(inputs []*types.Type) (*types.Type, error) {
		cond, a, b := inputs[0], inputs[1], inputs[2]
		if cond.ScalarKind() != types.Bool || cond.Kind() == types.Array {
			return nil, fmt.Errorf("conditional condition must be bool, got %s", cond)
		}
		if shortCircuit && !cond.IsScalar() {
			return nil, fmt.Errorf("short-circuit conditional requires a scalar condition, got %s", cond)
		}
		if !a.Equal(b) {
			return nil, fmt.Errorf("conditional branches have different types %s and %s", a, b)
		}
		return a, nil
	}
}

func inferMakeTuple(inputs []*types.Type) (*types.Type, error) {
	return types.TupleOf(inputs...), nil
}

func inferGetNth(index int) InferFn {
	return func(inputs []*types.Type) (*types.Type, error) {
		fields := inputs[0].Fields()
		if fields == nil {
			return nil, fmt.Errorf("core.get_nth requires a tuple, got %s", inputs[0])
		}
		if index >= len(fields) {
			return nil, fmt.Errorf("core.get_nth[%d] out of range for %s", index, inputs[0])
		}
		return fields[index], nil
	}
}

func inferShapeOf(inputs []*types.Type) (*types.Type, error) {
	if inputs[0].Kind() != types.Array {
		return nil, fmt.Errorf("core.shape_of requires an array, got %s", inputs[0])
	}
	return types.ShapeType, nil
}

// inferBroadcast expands a scalar (or re-shapes an array) to an array over
// the given shape.
func inferBroadcast(inputs []*types.Type) (*types.Type, error) {
	value, shape := inputs[0], inputs[1]
	if shape.Kind() != types.Shape {
		return nil, fmt.Errorf("core.broadcast requires a shape, got %s", shape)
	}
	kind := value.ScalarKind()
	if kind == types.Invalid {
		return nil, fmt.Errorf("core.broadcast is not defined for %s", value)
	}
	return types.ArrayOf(scalarOf(kind)), nil
}
