package expr

import (
	"fmt"
	"strconv"
	"strings"
)

func (l *Literal) String() string {
	return formatLiteral(l.value)
}

func (l *Leaf) String() string {
	return "L." + l.key
}

func (p *Placeholder) String() string {
	return "P." + p.key
}

func (c *OperatorCall) String() string {
	var b strings.Builder
	b.WriteString(c.op.Name())
	b.WriteString("(")
	for i, arg := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

// maxSnippetLen bounds the rendering used inside diagnostics; full trees can
// be arbitrarily large and error messages must stay readable.
const maxSnippetLen = 120

// RenderDebugSnippet returns a compact rendering of n for diagnostics,
// truncated for very large trees. Not intended for round-tripping.
func RenderDebugSnippet(n Node) string {
	s := n.String()
	if len(s) > maxSnippetLen {
		return s[:maxSnippetLen-3] + "..."
	}
	return s
}

// formatLiteral renders a literal value so that values of different static
// types never collide: the rendering participates in the fingerprint.
func formatLiteral(value any) string {
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return fmt.Sprintf("int64{%d}", v)
	case float32:
		return fmt.Sprintf("float32{%s}", formatFloat(float64(v), 32))
	case float64:
		return formatFloat(v, 64)
	case string:
		return strconv.Quote(v)
	case []byte:
		return "b" + strconv.Quote(string(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat always keeps a decimal point so floats stay distinguishable
// from integers in renderings.
func formatFloat(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s
}
