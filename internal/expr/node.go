package expr

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"github.com/google/arolla-sub005/internal/types"
)

// Fingerprint is a structural content hash identifying a node. Two nodes
// are structurally equal exactly when their fingerprints are equal, and the
// fingerprint is the sole equality key used by the rewrite engine.
type Fingerprint uint64

// String returns the fingerprint as fixed-width hex.
func (f Fingerprint) String() string {
	return fmt.Sprintf("%016x", uint64(f))
}

// Node is an immutable expression node. Subtrees are shared freely between
// parents and across goroutines; no node is ever mutated after construction.
type Node interface {
	Fingerprint() Fingerprint
	String() string
	isNode()
}

// Operator is the opaque operator identity attached to an OperatorCall.
// Identities are compared by Name, which the registry keeps unique.
type Operator interface {
	// Name returns the full registry-unique operator name, including any
	// embedded parameter (e.g. "core.get_nth[2]").
	Name() string

	// InferOutputType computes the call's static type from fully known
	// input types.
	InferOutputType(inputs []*types.Type) (*types.Type, error)
}

// Literal is a closed constant with an exact static type. The type is part
// of the literal's identity: float64(2) and int64(2) are distinct nodes.
type Literal struct {
	value any
	typ   *types.Type
	fp    Fingerprint
}

// Leaf is a free variable bound at evaluation time. A leaf may carry a
// declared static type; untyped leaves infer to unknown. Leaves are illegal
// inside pattern templates.
type Leaf struct {
	key string
	typ *types.Type
	fp  Fingerprint
}

// Placeholder is a named hole, valid only inside pattern templates. Two
// occurrences of the same key within one pattern must bind to structurally
// equal subtrees.
type Placeholder struct {
	key string
	fp  Fingerprint
}

// OperatorCall applies an operator to an ordered sequence of children.
type OperatorCall struct {
	op   Operator
	args []Node
	fp   Fingerprint
}

func (*Literal) isNode()      {}
func (*Leaf) isNode()         {}
func (*Placeholder) isNode()  {}
func (*OperatorCall) isNode() {}

func (l *Literal) Fingerprint() Fingerprint      { return l.fp }
func (l *Leaf) Fingerprint() Fingerprint         { return l.fp }
func (p *Placeholder) Fingerprint() Fingerprint  { return p.fp }
func (c *OperatorCall) Fingerprint() Fingerprint { return c.fp }

// NewLiteral returns a literal node with the given value and static type.
func NewLiteral(value any, typ *types.Type) *Literal {
	return &Literal{
		value: value,
		typ:   typ,
		fp:    hashParts('L', typeName(typ), formatLiteral(value)),
	}
}

// LiteralOf returns a literal node, deriving the static type from the Go
// value. Supported values are bool, int32, int64, float32, float64, string
// (text) and []byte.
func LiteralOf(value any) *Literal {
	var typ *types.Type
	switch value.(type) {
	case bool:
		typ = types.BoolType
	case int32:
		typ = types.Int32Type
	case int64:
		typ = types.Int64Type
	case float32:
		typ = types.Float32Type
	case float64:
		typ = types.Float64Type
	case string:
		typ = types.TextType
	case []byte:
		typ = types.BytesType
	}
	return NewLiteral(value, typ)
}

// Value returns the literal's constant value.
func (l *Literal) Value() any { return l.value }

// Type returns the literal's static type.
func (l *Literal) Type() *types.Type { return l.typ }

// NewLeaf returns an untyped free variable node.
func NewLeaf(key string) *Leaf {
	return NewTypedLeaf(key, nil)
}

// NewTypedLeaf returns a free variable node with a declared static type.
func NewTypedLeaf(key string, typ *types.Type) *Leaf {
	return &Leaf{
		key: key,
		typ: typ,
		fp:  hashParts('V', key, typeName(typ)),
	}
}

// Key returns the leaf's variable name.
func (l *Leaf) Key() string { return l.key }

// Type returns the leaf's declared type, or nil when undeclared.
func (l *Leaf) Type() *types.Type { return l.typ }

// NewPlaceholder returns a named hole node for use in pattern templates.
func NewPlaceholder(key string) *Placeholder {
	return &Placeholder{
		key: key,
		fp:  hashParts('P', key),
	}
}

// Key returns the hole's name.
func (p *Placeholder) Key() string { return p.key }

// NewCall returns an operator application over the given children. The
// children are referenced, not copied; callers must not mutate the slice
// afterwards.
func NewCall(op Operator, args ...Node) *OperatorCall {
	h := fnv.New64a()
	h.Write([]byte{'O'})
	h.Write([]byte(op.Name()))
	var buf [8]byte
	for _, arg := range args {
		binary.LittleEndian.PutUint64(buf[:], uint64(arg.Fingerprint()))
		h.Write(buf[:])
	}
	return &OperatorCall{op: op, args: args, fp: Fingerprint(h.Sum64())}
}

// Op returns the call's operator identity.
func (c *OperatorCall) Op() Operator { return c.op }

// Args returns the call's children in order. The returned slice must be
// treated as read-only.
func (c *OperatorCall) Args() []Node { return c.args }

// Arg returns the i-th child.
func (c *OperatorCall) Arg(i int) Node { return c.args[i] }

// WithNewChildren rebuilds an operator call with the same operator but new
// children, recomputing the fingerprint. Nodes without children are
// returned unchanged. The rewrite engine uses this to rebuild ancestors on
// the rewritten path while sharing everything off it.
func WithNewChildren(n Node, children []Node) Node {
	call, ok := n.(*OperatorCall)
	if !ok {
		return n
	}
	return NewCall(call.op, children...)
}

// Equal reports structural equality of two nodes by fingerprint.
func Equal(a, b Node) bool {
	return a.Fingerprint() == b.Fingerprint()
}

// hashParts fingerprints a childless node from its variant tag and payload.
func hashParts(tag byte, parts ...string) Fingerprint {
	h := fnv.New64a()
	h.Write([]byte{tag})
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return Fingerprint(h.Sum64())
}

func typeName(t *types.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}
