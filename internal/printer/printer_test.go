package printer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edisonhq/happy-stacks/internal/guard"
)

func TestViolationReturnsShortError(t *testing.T) {
	ve := &guard.ValidationError{
		Reason: "task frontmatter does not declare a stack",
		Context: []guard.ContextLine{
			{Key: "missing key", Value: "stack"},
		},
		Fixes: []string{"hs task set my-task stack <stack-name>"},
	}

	err := Violation(ve)
	assert.EqualError(t, err, "task frontmatter does not declare a stack")
}

func TestViolationPassesThroughPlainErrors(t *testing.T) {
	plain := errors.New("something infrastructural")
	assert.Equal(t, plain, Violation(plain))
}

func TestErrorReturnsTitle(t *testing.T) {
	err := Error("invalid output format", "Unknown format: xml", []string{"Valid formats: default, json"})
	assert.EqualError(t, err, "invalid output format")
}
