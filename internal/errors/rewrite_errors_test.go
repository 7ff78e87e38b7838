package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderAssemblesError(t *testing.T) {
	err := NewRewriteError(ErrorNonTermination, "did not converge").
		WithNote("iteration %d", 100).
		WithHelp("check the rule pack").
		Build()

	assert.Equal(t, "E0100: did not converge", err.Error())
	assert.Equal(t, []string{"iteration 100"}, err.Notes)
	assert.Equal(t, "check the rule pack", err.HelpText)
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrorLeafInTemplate, CodeOf(LeafInTemplate("x", "from")))
	assert.Equal(t, "", CodeOf(stderrors.New("foreign")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestErrorDescriptionsCoverAllCodes(t *testing.T) {
	codes := []string{
		ErrorLeafInTemplate, ErrorUnknownPlaceholder, ErrorTrivialMatch,
		ErrorUnknownMatcherKey, ErrorNonTermination, ErrorTypeChanged,
		ErrorUnknownOperator, ErrorDuplicateOperator,
	}
	for _, code := range codes {
		assert.NotEmpty(t, GetErrorDescription(code), code)
		assert.NotEmpty(t, GetErrorCategory(code), code)
	}
}

func TestReporterPlainFormat(t *testing.T) {
	r := &Reporter{Colorize: false}
	out := r.Format(TrivialMatch("x"))

	assert.Contains(t, out, "error[E0003]")
	assert.Contains(t, out, "P.x")
	assert.Contains(t, out, "help:")

	assert.Equal(t, "plain\n", r.FormatAny(stderrors.New("plain")))
}
