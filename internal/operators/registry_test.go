package operators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/arolla-sub005/internal/errors"
	"github.com/google/arolla-sub005/internal/types"
)

func TestResolveBuiltin(t *testing.T) {
	reg := NewDefaultRegistry()

	add, err := reg.Resolve(Add)
	require.NoError(t, err)
	assert.Equal(t, "math.add", add.Name())
	assert.Equal(t, 2, add.Arity())
}

func TestResolveUnknownOperator(t *testing.T) {
	reg := NewDefaultRegistry()

	_, err := reg.Resolve("math.no_such_op")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorUnknownOperator, errors.CodeOf(err))
}

func TestDuplicateRegistration(t *testing.T) {
	reg := NewDefaultRegistry()

	_, err := reg.Register(Add, 2, inferPointwiseNumeric)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDuplicateOperator, errors.CodeOf(err))
}

func TestGetNthIdentity(t *testing.T) {
	reg := NewDefaultRegistry()

	second := reg.GetNth(2)
	assert.Equal(t, "core.get_nth[2]", second.Name())
	assert.Same(t, second, reg.GetNth(2), "projection identities are cached")
	assert.NotEqual(t, second.Name(), reg.GetNth(1).Name())

	index, ok := ProjectionIndex(second)
	require.True(t, ok)
	assert.Equal(t, 2, index)

	add := reg.MustResolve(Add)
	_, ok = ProjectionIndex(add)
	assert.False(t, ok)
}

func TestArithmeticInference(t *testing.T) {
	reg := NewDefaultRegistry()
	add := reg.MustResolve(Add)

	out, err := add.InferOutputType([]*types.Type{types.Int32Type, types.Int32Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Int32Type))

	out, err = add.InferOutputType([]*types.Type{types.Optional(types.Int32Type), types.Int32Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Optional(types.Int32Type)))

	out, err = add.InferOutputType([]*types.Type{types.ArrayOf(types.Float64Type), types.Float64Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.ArrayOf(types.Float64Type)))

	_, err = add.InferOutputType([]*types.Type{types.Int32Type, types.Int64Type})
	assert.Error(t, err, "mixed scalar kinds must not infer")

	_, err = add.InferOutputType([]*types.Type{types.BoolType, types.BoolType})
	assert.Error(t, err, "arithmetic on bool must not infer")

	_, err = add.InferOutputType([]*types.Type{types.Int32Type})
	assert.Error(t, err, "arity mismatch must not infer")
}

func TestComparisonInference(t *testing.T) {
	reg := NewDefaultRegistry()
	less := reg.MustResolve(Less)

	out, err := less.InferOutputType([]*types.Type{types.Float64Type, types.Float64Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.BoolType))

	// Three-valued: comparing optionals yields an optional bool.
	out, err = less.InferOutputType([]*types.Type{types.Optional(types.Float64Type), types.Float64Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Optional(types.BoolType)))
}

func TestPresenceInference(t *testing.T) {
	reg := NewDefaultRegistry()

	has := reg.MustResolve(Has)
	out, err := has.InferOutputType([]*types.Type{types.Optional(types.Int32Type)})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.BoolType), "presence of a value is always known")

	presenceAnd := reg.MustResolve(PresenceAnd)
	out, err = presenceAnd.InferOutputType([]*types.Type{types.Int32Type, types.BoolType})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Optional(types.Int32Type)))

	presenceOr := reg.MustResolve(PresenceOr)
	out, err = presenceOr.InferOutputType([]*types.Type{types.Optional(types.Int32Type), types.Int32Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Int32Type), "a present fallback makes the result present")
}

func TestConditionalInference(t *testing.T) {
	reg := NewDefaultRegistry()
	where := reg.MustResolve(Where)
	sel := reg.MustResolve(Select)

	out, err := where.InferOutputType([]*types.Type{types.BoolType, types.Int64Type, types.Int64Type})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.Int64Type))

	// where tolerates an optional condition; select does not.
	optCond := []*types.Type{types.Optional(types.BoolType), types.Int64Type, types.Int64Type}
	_, err = where.InferOutputType(optCond)
	assert.NoError(t, err)
	_, err = sel.InferOutputType(optCond)
	assert.Error(t, err)

	_, err = where.InferOutputType([]*types.Type{types.BoolType, types.Int64Type, types.Int32Type})
	assert.Error(t, err, "branch types must agree")
}

func TestShapeInference(t *testing.T) {
	reg := NewDefaultRegistry()

	shapeOf := reg.MustResolve(ShapeOf)
	out, err := shapeOf.InferOutputType([]*types.Type{types.ArrayOf(types.Float32Type)})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.ShapeType))
	_, err = shapeOf.InferOutputType([]*types.Type{types.Float32Type})
	assert.Error(t, err)

	broadcast := reg.MustResolve(Broadcast)
	out, err = broadcast.InferOutputType([]*types.Type{types.Float32Type, types.ShapeType})
	require.NoError(t, err)
	assert.True(t, out.Equal(types.ArrayOf(types.Float32Type)))
	_, err = broadcast.InferOutputType([]*types.Type{types.Float32Type, types.Int32Type})
	assert.Error(t, err)
}
