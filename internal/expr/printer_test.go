package expr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/arolla-sub005/internal/operators"
)

func TestStringRendering(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)

	tests := []struct {
		node Node
		want string
	}{
		{NewLeaf("x"), "L.x"},
		{NewPlaceholder("x"), "P.x"},
		{LiteralOf(true), "true"},
		{LiteralOf(int32(7)), "7"},
		{LiteralOf(int64(7)), "int64{7}"},
		{LiteralOf(float32(1.5)), "float32{1.5}"},
		{LiteralOf(2.0), "2."},
		{LiteralOf("hi"), `"hi"`},
		{NewCall(add, NewLeaf("x"), LiteralOf(int64(0))), "math.add(L.x, int64{0})"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.String())
	}
}

func TestRenderDebugSnippetTruncatesLargeTrees(t *testing.T) {
	reg := operators.NewDefaultRegistry()
	add := reg.MustResolve(operators.Add)

	node := Node(NewLeaf("x"))
	for i := 0; i < 50; i++ {
		node = NewCall(add, node, NewLeaf("y"))
	}

	snippet := RenderDebugSnippet(node)
	assert.LessOrEqual(t, len(snippet), maxSnippetLen)
	assert.True(t, strings.HasSuffix(snippet, "..."))

	// Small nodes render in full.
	assert.Equal(t, "L.x", RenderDebugSnippet(NewLeaf("x")))
}
