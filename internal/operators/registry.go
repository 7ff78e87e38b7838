package operators

import (
	"fmt"

	"github.com/google/arolla-sub005/internal/errors"
	"github.com/google/arolla-sub005/internal/types"
)

// InferFn computes an operator's output type from fully known input types.
type InferFn func(inputs []*types.Type) (*types.Type, error)

// Operator is an immutable operator identity. The rewrite engine treats it
// as an opaque token compared by Name; the registry keeps names unique.
type Operator struct {
	name       string
	arity      int // -1 for variadic
	infer      InferFn
	projection int // tuple projection index, -1 otherwise
}

// Name returns the full registry-unique operator name.
func (op *Operator) Name() string { return op.name }

// Arity returns the declared arity, or -1 for variadic operators.
func (op *Operator) Arity() int { return op.arity }

// InferOutputType computes the output type of a call with the given input
// types.
func (op *Operator) InferOutputType(inputs []*types.Type) (*types.Type, error) {
	if op.arity >= 0 && len(inputs) != op.arity {
		return nil, fmt.Errorf("operator %s expects %d arguments, got %d", op.name, op.arity, len(inputs))
	}
	return op.infer(inputs)
}

// ProjectionIndex returns the tuple index embedded in a projection
// operator's identity, and whether op is a projection at all.
func ProjectionIndex(op *Operator) (int, bool) {
	if op.projection < 0 {
		return 0, false
	}
	return op.projection, true
}

// Registry maps operator names to identities. A registry is assembled once
// at startup and treated as read-only afterwards; it is not safe for
// concurrent mutation.
type Registry struct {
	ops map[string]*Operator
}

// NewRegistry creates an empty operator registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]*Operator)}
}

// NewDefaultRegistry creates a registry with all builtin operators.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.InitializeBuiltins()
	return r
}

// Register adds an operator under a unique name. Arity -1 marks a variadic
// operator.
func (r *Registry) Register(name string, arity int, infer InferFn) (*Operator, error) {
	if _, exists := r.ops[name]; exists {
		return nil, errors.DuplicateOperator(name)
	}
	op := &Operator{name: name, arity: arity, infer: infer, projection: -1}
	r.ops[name] = op
	return op, nil
}

// Resolve returns the operator registered under name.
func (r *Registry) Resolve(name string) (*Operator, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, errors.UnknownOperator(name)
	}
	return op, nil
}

// MustResolve returns the operator registered under name and panics when it
// is absent. Rule packs use it for builtin names that are known constants.
func (r *Registry) MustResolve(name string) *Operator {
	op, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}
	return op
}

// GetNth returns the tuple projection operator for the given index,
// creating it on first use. The index is embedded in the operator identity,
// so get_nth[1] and get_nth[2] are distinct operators.
func (r *Registry) GetNth(index int) *Operator {
	name := fmt.Sprintf("%s[%d]", GetNthBase, index)
	if op, ok := r.ops[name]; ok {
		return op
	}
	op := &Operator{
		name:       name,
		arity:      1,
		infer:      inferGetNth(index),
		projection: index,
	}
	r.ops[name] = op
	return op
}
