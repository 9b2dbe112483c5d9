package guard

import (
	"fmt"

	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// checkBaseMetadata enforces the base-task linkage fields per kind.
// Parent tasks carry no requirement (a base_task link is optional for
// them); track and component tasks must name the base task they build
// on, and component tasks must additionally name their base worktree.
func checkBaseMetadata(id string, meta frontmatter.Meta) error {
	if err := meta.Kind.Validate(); err != nil {
		return invalidKindError(id, string(meta.Kind))
	}

	if meta.Kind == frontmatter.KindParent {
		return nil
	}

	if meta.BaseTask == "" {
		return &ValidationError{
			Reason: "track and component tasks must declare a base_task",
			Context: []ContextLine{
				{Key: "missing key", Value: "base_task"},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s base_task <base-task-id>", idOrPlaceholder(id)),
				"hs task scaffold component --parent <track-id>  (links base_task automatically)",
			},
		}
	}

	if meta.Kind == frontmatter.KindComponent && meta.BaseWorktree == "" {
		return &ValidationError{
			Reason: "component tasks must declare a base_worktree",
			Context: []ContextLine{
				{Key: "missing key", Value: "base_worktree"},
				{Key: "convention", Value: "edison/<task-id>"},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s base_worktree edison/%s", idOrPlaceholder(id), idOrPlaceholder(id)),
			},
		}
	}

	return nil
}
