package guard

import (
	"fmt"

	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// checkStackContext enforces agreement between the task's declared
// stack and the stack active in the environment. Parent tasks are
// exempt: they may span stacks. Everything else must declare a stack,
// run inside one, and the two must match exactly.
func checkStackContext(id string, meta frontmatter.Meta) error {
	if meta.Kind == frontmatter.KindParent {
		return nil
	}

	if meta.Stack == "" {
		return &ValidationError{
			Reason: "task frontmatter does not declare a stack",
			Context: []ContextLine{
				{Key: "missing key", Value: "stack"},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s stack <stack-name>", idOrPlaceholder(id)),
			},
		}
	}

	active := ActiveStack()
	if active == "" {
		return &ValidationError{
			Reason: "no active stack in the environment",
			Context: []ContextLine{
				{Key: "declared stack", Value: meta.Stack},
				{Key: "checked variables", Value: EnvStack + " (legacy: " + EnvStackLegacy + ")"},
			},
			Fixes: []string{
				fmt.Sprintf("hs stack exec %s -- <command>", meta.Stack),
			},
		}
	}

	if active != meta.Stack {
		return &ValidationError{
			Reason: "active stack does not match the task's declared stack",
			Context: []ContextLine{
				{Key: "declared stack", Value: meta.Stack},
				{Key: "active stack", Value: active},
			},
			Fixes: []string{
				fmt.Sprintf("hs stack exec %s -- <command>", meta.Stack),
			},
		}
	}

	return nil
}
