package errors

import "fmt"

// RewriteError is a structured engine error with optional notes and help
// text. Construction-time errors point at a bug in rule-pack code;
// driver-time errors point at an unsound or non-reducing rule.
type RewriteError struct {
	Code     string   // Error code like E0001
	Message  string   // Primary error message
	Notes    []string // Additional context notes
	HelpText string   // Help text for the error
}

// Error implements the error interface.
func (e *RewriteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// RewriteErrorBuilder provides a fluent interface for creating engine errors.
type RewriteErrorBuilder struct {
	err RewriteError
}

// NewRewriteError creates a new engine error builder.
func NewRewriteError(code, message string) *RewriteErrorBuilder {
	return &RewriteErrorBuilder{
		err: RewriteError{Code: code, Message: message},
	}
}

// WithNote adds a context note to the error.
func (b *RewriteErrorBuilder) WithNote(format string, args ...any) *RewriteErrorBuilder {
	b.err.Notes = append(b.err.Notes, fmt.Sprintf(format, args...))
	return b
}

// WithHelp adds help text to the error.
func (b *RewriteErrorBuilder) WithHelp(help string) *RewriteErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error.
func (b *RewriteErrorBuilder) Build() *RewriteError {
	return &b.err
}

// CodeOf returns the engine error code carried by err, or "" for foreign
// errors. Tests and callers branch on codes rather than message text.
func CodeOf(err error) string {
	if re, ok := err.(*RewriteError); ok {
		return re.Code
	}
	return ""
}

// Common error constructors. Expression snippets and type names arrive
// pre-rendered so this package stays independent of the node representation.

// LeafInTemplate creates an error for a free-variable leaf inside a pattern
// template.
func LeafInTemplate(leafKey, template string) *RewriteError {
	return NewRewriteError(ErrorLeafInTemplate,
		fmt.Sprintf("leaf 'L.%s' is not allowed in a pattern %s template", leafKey, template)).
		WithNote("pattern templates are built from literals, placeholders and operator calls").
		WithHelp("replace the leaf with a placeholder and let matching bind it").
		Build()
}

// UnknownPlaceholder creates an error for a to-template hole the
// from-template never binds.
func UnknownPlaceholder(holeKey string) *RewriteError {
	return NewRewriteError(ErrorUnknownPlaceholder,
		fmt.Sprintf("substitution references placeholder 'P.%s' which the pattern does not bind", holeKey)).
		WithHelp("every placeholder in the to-template must also occur in the from-template").
		Build()
}

// TrivialMatch creates an error for a from-template that is a single
// unconstrained hole.
func TrivialMatch(holeKey string) *RewriteError {
	return NewRewriteError(ErrorTrivialMatch,
		fmt.Sprintf("pattern 'P.%s' with no matcher would match every node", holeKey)).
		WithHelp("constrain the hole with a matcher predicate or give the pattern structure").
		Build()
}

// UnknownMatcherKey creates an error for a matcher registered under a key
// that is not a hole in the from-template.
func UnknownMatcherKey(key string) *RewriteError {
	return NewRewriteError(ErrorUnknownMatcherKey,
		fmt.Sprintf("matcher registered for '%s' but the pattern has no such placeholder", key)).
		Build()
}

// NonTermination creates an error for a rule set that failed to converge
// within the iteration cap. The snippets come from the last completed
// iteration so a cyclic rule pair is visible in the message.
func NonTermination(iterations int, before, after string) *RewriteError {
	return NewRewriteError(ErrorNonTermination,
		fmt.Sprintf("rewriting did not converge after %d iterations", iterations)).
		WithNote("last iteration rewrote %s", before).
		WithNote("              into %s", after).
		WithHelp("some rule (or rule pair) in the set is not strictly reducing").
		Build()
}

// TypeChanged creates an error for a rewrite iteration that altered the
// expression's inferred static type.
func TypeChanged(before, after, fromType, toType string) *RewriteError {
	return NewRewriteError(ErrorTypeChanged,
		fmt.Sprintf("rewrite changed inferred type from %s to %s", fromType, toType)).
		WithNote("before: %s", before).
		WithNote("after:  %s", after).
		WithHelp("a rule in the set is not semantics-preserving; fix the rule pack").
		Build()
}

// UnknownOperator creates an error for an unregistered operator name.
func UnknownOperator(name string) *RewriteError {
	return NewRewriteError(ErrorUnknownOperator,
		fmt.Sprintf("operator '%s' is not registered", name)).
		Build()
}

// DuplicateOperator creates an error for a doubly registered operator name.
func DuplicateOperator(name string) *RewriteError {
	return NewRewriteError(ErrorDuplicateOperator,
		fmt.Sprintf("operator '%s' is already registered", name)).
		Build()
}
