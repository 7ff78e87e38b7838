package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarEquality(t *testing.T) {
	assert.True(t, Int32Type.Equal(Int32Type))
	assert.False(t, Int32Type.Equal(Int64Type))
	assert.False(t, Float32Type.Equal(Float64Type))
	assert.False(t, Int32Type.Equal(Optional(Int32Type)))
}

func TestOptionalIsIdempotent(t *testing.T) {
	opt := Optional(Float64Type)
	assert.True(t, opt.IsOptional())
	assert.Same(t, opt, Optional(opt))
}

func TestOptionalNotDefinedForTuplesAndShapes(t *testing.T) {
	tup := TupleOf(Int32Type, BoolType)
	assert.Same(t, tup, Optional(tup))
	assert.Same(t, ShapeType, Optional(ShapeType))
}

func TestCompositeEquality(t *testing.T) {
	assert.True(t, TupleOf(Int32Type, BoolType).Equal(TupleOf(Int32Type, BoolType)))
	assert.False(t, TupleOf(Int32Type, BoolType).Equal(TupleOf(BoolType, Int32Type)))
	assert.False(t, TupleOf(Int32Type).Equal(TupleOf(Int32Type, Int32Type)))
	assert.True(t, ArrayOf(Float32Type).Equal(ArrayOf(Float32Type)))
	assert.False(t, ArrayOf(Float32Type).Equal(ArrayOf(Float64Type)))
}

func TestNilEquality(t *testing.T) {
	var unknown *Type
	assert.True(t, unknown.Equal(nil))
	assert.False(t, Int32Type.Equal(nil))
	assert.False(t, unknown.Equal(Int32Type))
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  *Type
		want string
	}{
		{Int32Type, "int32"},
		{Optional(Int64Type), "optional<int64>"},
		{ArrayOf(Float32Type), "array<float32>"},
		{TupleOf(Int32Type, Optional(BoolType)), "tuple<int32,optional<bool>>"},
		{ShapeType, "shape"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}

func TestScalarKind(t *testing.T) {
	assert.Equal(t, Int32, Int32Type.ScalarKind())
	assert.Equal(t, Int32, Optional(Int32Type).ScalarKind())
	assert.Equal(t, Float64, ArrayOf(Float64Type).ScalarKind())
	assert.Equal(t, Invalid, TupleOf(Int32Type).ScalarKind())
	assert.Equal(t, Invalid, ShapeType.ScalarKind())
}

func TestIsScalarAndNumeric(t *testing.T) {
	assert.True(t, Int64Type.IsScalar())
	assert.False(t, Optional(Int64Type).IsScalar())
	assert.False(t, ArrayOf(Int64Type).IsScalar())

	assert.True(t, Float32Type.IsNumeric())
	assert.True(t, ArrayOf(Int32Type).IsNumeric())
	assert.False(t, BoolType.IsNumeric())
	assert.False(t, TextType.IsNumeric())
}
