package guard

import (
	"fmt"
	"strings"

	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// checkWorktreeComponentDirs verifies that every component the task
// declares has a directory override in the environment pointing inside
// the worktree area. Operating on a default checkout is always
// refused: component tasks run in worktree isolation or not at all.
func checkWorktreeComponentDirs(id string, meta frontmatter.Meta) error {
	if meta.Kind != frontmatter.KindTrack && meta.Kind != frontmatter.KindComponent {
		return &ValidationError{
			Reason: "worktree checks apply only to track and component tasks",
			Context: []ContextLine{
				{Key: "hs_kind", Value: kindOrPlaceholder(meta.Kind)},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s hs_kind <track|component>", idOrPlaceholder(id)),
			},
		}
	}

	components := meta.ComponentSet()

	// A component task falling back to the components list must still
	// target exactly one component.
	if meta.Kind == frontmatter.KindComponent && meta.Component == "" && len(components) > 1 {
		return &ValidationError{
			Reason: "component tasks must target exactly one component",
			Context: []ContextLine{
				{Key: "declared components", Value: strings.Join(components, ", ")},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s component <name>", idOrPlaceholder(id)),
			},
		}
	}

	if len(components) == 0 {
		return &ValidationError{
			Reason: "task must declare component(s)",
			Context: []ContextLine{
				{Key: "missing key", Value: "components"},
			},
			Fixes: []string{
				fmt.Sprintf("hs task set %s components <name>[,<name>...]", idOrPlaceholder(id)),
			},
		}
	}

	for _, component := range components {
		primary, legacy := ComponentDirVars(component)
		dir := ComponentDir(component)
		if dir == "" {
			return &ValidationError{
				Reason: fmt.Sprintf("no worktree directory override for component '%s'", component),
				Context: []ContextLine{
					{Key: "missing variable", Value: primary},
					{Key: "legacy alias", Value: legacy},
				},
				Fixes: []string{
					"hs stack exec <stack> -- <command>  (exports overrides for every component)",
					fmt.Sprintf("export %s=<repo>%s%s", primary, WorktreeSegment, component),
					fmt.Sprintf("hs component worktree add %s", component),
				},
			}
		}

		if !InWorktree(dir) {
			return &ValidationError{
				Reason: fmt.Sprintf("component '%s' resolves outside the worktree area, refusing to operate on default checkouts", component),
				Context: []ContextLine{
					{Key: "resolved path", Value: dir},
					{Key: "required segment", Value: WorktreeSegment},
				},
				Fixes: []string{
					fmt.Sprintf("hs component worktree add %s", component),
					fmt.Sprintf("export %s=<repo>%s%s", primary, WorktreeSegment, component),
				},
			}
		}
	}

	return nil
}

func kindOrPlaceholder(kind frontmatter.Kind) string {
	if kind == "" {
		return "(not set)"
	}
	return string(kind)
}
