package types

import (
	"fmt"
	"strings"
)

// Kind identifies the basic shape of a static type.
type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Int32
	Int64
	Float32
	Float64
	Bytes
	Text
	Tuple
	Array
	Shape
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bytes:
		return "bytes"
	case Text:
		return "text"
	case Tuple:
		return "tuple"
	case Array:
		return "array"
	case Shape:
		return "shape"
	default:
		return "invalid"
	}
}

// Type is an immutable static type descriptor. Scalar types are a kind plus
// an optional flag; arrays carry their element type and tuples carry their
// field types in order.
type Type struct {
	kind     Kind
	optional bool
	elems    []*Type
}

// Shared descriptors for the scalar types. Composite types are built with
// Optional, ArrayOf and TupleOf.
var (
	BoolType    = &Type{kind: Bool}
	Int32Type   = &Type{kind: Int32}
	Int64Type   = &Type{kind: Int64}
	Float32Type = &Type{kind: Float32}
	Float64Type = &Type{kind: Float64}
	BytesType   = &Type{kind: Bytes}
	TextType    = &Type{kind: Text}
	ShapeType   = &Type{kind: Shape}
)

// Optional returns the optional variant of t. Optional is idempotent and is
// not defined for tuples and shapes, which are always present.
func Optional(t *Type) *Type {
	if t == nil || t.optional || t.kind == Tuple || t.kind == Shape {
		return t
	}
	return &Type{kind: t.kind, optional: true, elems: t.elems}
}

// ArrayOf returns the array type with element type elem.
func ArrayOf(elem *Type) *Type {
	return &Type{kind: Array, elems: []*Type{elem}}
}

// TupleOf returns the tuple type with the given field types.
func TupleOf(fields ...*Type) *Type {
	return &Type{kind: Tuple, elems: fields}
}

// Kind returns the basic shape of the type.
func (t *Type) Kind() Kind {
	return t.kind
}

// IsOptional reports whether the type is an optional variant.
func (t *Type) IsOptional() bool {
	return t.optional
}

// Elem returns the element type of an array, or nil for other kinds.
func (t *Type) Elem() *Type {
	if t.kind != Array || len(t.elems) == 0 {
		return nil
	}
	return t.elems[0]
}

// Fields returns the field types of a tuple, or nil for other kinds.
func (t *Type) Fields() []*Type {
	if t.kind != Tuple {
		return nil
	}
	return t.elems
}

// ScalarKind strips optional and array wrappers and returns the underlying
// scalar kind. Tuples and shapes have no scalar kind and return Invalid.
func (t *Type) ScalarKind() Kind {
	switch t.kind {
	case Array:
		if elem := t.Elem(); elem != nil {
			return elem.ScalarKind()
		}
		return Invalid
	case Tuple, Shape, Invalid:
		return Invalid
	default:
		return t.kind
	}
}

// IsNumeric reports whether the underlying scalar kind is numeric.
func (t *Type) IsNumeric() bool {
	switch t.ScalarKind() {
	case Int32, Int64, Float32, Float64:
		return true
	}
	return false
}

// IsScalar reports whether the type is a plain non-optional scalar.
func (t *Type) IsScalar() bool {
	switch t.kind {
	case Tuple, Array, Shape, Invalid:
		return false
	}
	return !t.optional
}

// Equal reports structural equality of two types. A nil type is only equal
// to nil.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.kind != o.kind || t.optional != o.optional || len(t.elems) != len(o.elems) {
		return false
	}
	for i, e := range t.elems {
		if !e.Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

// String returns a stable rendering such as "optional<int32>",
// "array<float32>" or "tuple<int32,bool>".
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	var base string
	switch t.kind {
	case Array:
		base = fmt.Sprintf("array<%s>", t.Elem())
	case Tuple:
		parts := make([]string, len(t.elems))
		for i, e := range t.elems {
			parts[i] = e.String()
		}
		base = fmt.Sprintf("tuple<%s>", strings.Join(parts, ","))
	default:
		base = t.kind.String()
	}
	if t.optional {
		return fmt.Sprintf("optional<%s>", base)
	}
	return base
}
