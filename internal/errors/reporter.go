package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter formats engine errors for terminal output. It sits off the hot
// path: the engine returns plain error values and callers opt into pretty
// rendering.
type Reporter struct {
	// Colorize enables ANSI colors in the output.
	Colorize bool
}

// NewReporter creates a reporter with colors enabled.
func NewReporter() *Reporter {
	return &Reporter{Colorize: true}
}

// Format renders a RewriteError with its code, category, notes and help.
func (r *Reporter) Format(err *RewriteError) string {
	headerColor := color.New(color.FgRed, color.Bold).SprintFunc()
	noteColor := color.New(color.FgBlue).SprintFunc()
	helpColor := color.New(color.FgGreen).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	if !r.Colorize {
		plain := fmt.Sprint
		headerColor, noteColor, helpColor, dim = plain, plain, plain, plain
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", headerColor("error"), err.Code, err.Message))
	b.WriteString(fmt.Sprintf("  %s %s\n", dim("-->"), GetErrorCategory(err.Code)))

	for _, note := range err.Notes {
		b.WriteString(fmt.Sprintf("  %s %s\n", noteColor("note:"), note))
	}
	if err.HelpText != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", helpColor("help:"), err.HelpText))
	}

	return b.String()
}

// FormatAny renders any error, using the structured form when available.
func (r *Reporter) FormatAny(err error) string {
	if re, ok := err.(*RewriteError); ok {
		return r.Format(re)
	}
	return err.Error() + "\n"
}
