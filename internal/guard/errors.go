package guard

import (
	"errors"
	"fmt"
	"strings"
)

// ContextLine is a single key/value detail attached to a validation
// error, rendered in declaration order.
type ContextLine struct {
	Key   string
	Value string
}

// ValidationError is a policy violation: a one-line diagnosis, optional
// context details, and literal remediation commands. Every Happy
// Stacks rule failure is one of these; infrastructure failures inside
// the loader never surface as errors at all.
type ValidationError struct {
	Reason  string
	Context []ContextLine
	Fixes   []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Reason)

	if len(e.Context) > 0 {
		b.WriteString("\n")
		for _, line := range e.Context {
			fmt.Fprintf(&b, "\n  %s: %s", line.Key, line.Value)
		}
	}

	if len(e.Fixes) > 0 {
		b.WriteString("\n\nFix:")
		for _, fix := range e.Fixes {
			b.WriteString("\n  " + fix)
		}
	}

	return b.String()
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// invalidKindError is the shared failure for an absent or unrecognized
// hs_kind field.
func invalidKindError(id string, kind string) *ValidationError {
	declared := kind
	if declared == "" {
		declared = "(not set)"
	}
	return &ValidationError{
		Reason: "task frontmatter has a missing or invalid hs_kind",
		Context: []ContextLine{
			{Key: "hs_kind", Value: declared},
			{Key: "valid kinds", Value: "parent, track, component"},
		},
		Fixes: []string{
			fmt.Sprintf("hs task set %s hs_kind <parent|track|component>", idOrPlaceholder(id)),
		},
	}
}

func idOrPlaceholder(id string) string {
	if id == "" {
		return "<task-id>"
	}
	return id
}
