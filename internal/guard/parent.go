package guard

import (
	"fmt"

	"github.com/edisonhq/happy-stacks/internal/taskrepo"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// checkParentStructure enforces the parent → track → component
// hierarchy: the acting task must link to a parent of the right kind,
// and the link must be consistent with the task's own declarations.
// Parent-kind tasks always fail here - they are umbrellas, never
// started or finished directly.
//
// A parent document whose front-matter cannot be read degrades to an
// empty view rather than a distinct error, so a broken parent surfaces
// as an ordinary kind mismatch naming both kinds.
func checkParentStructure(repo *taskrepo.Repo, id string, meta frontmatter.Meta) error {
	if err := meta.Kind.Validate(); err != nil {
		return invalidKindError(id, string(meta.Kind))
	}

	if meta.Kind == frontmatter.KindParent {
		return &ValidationError{
			Reason: "refusing to claim or finish a parent task",
			Context: []ContextLine{
				{Key: "hs_kind", Value: string(frontmatter.KindParent)},
			},
			Fixes: []string{
				fmt.Sprintf("hs task scaffold track --parent %s", idOrPlaceholder(id)),
				"hs task scaffold component --parent <track-id>",
			},
		}
	}

	target := meta.ParentTarget()
	if target == "" {
		return &ValidationError{
			Reason: "task has no parent relationship",
			Context: []ContextLine{
				{Key: "expected", Value: `relationships entry with type "parent"`},
			},
			Fixes: []string{
				fmt.Sprintf("hs task link %s --parent <parent-id>", idOrPlaceholder(id)),
			},
		}
	}

	parent, err := repo.Get(target)
	if err != nil || parent == nil {
		// Lookup failure and absence are indistinguishable to this
		// layer; both fail closed naming the id.
		return &ValidationError{
			Reason: "parent task not found",
			Context: []ContextLine{
				{Key: "parent id", Value: target},
			},
			Fixes: []string{
				fmt.Sprintf("hs task link %s --parent <parent-id>", idOrPlaceholder(id)),
			},
		}
	}

	parentMeta, _ := loadMetaFromPath(parent.Path)

	switch meta.Kind {
	case frontmatter.KindTrack:
		if parentMeta.Kind != frontmatter.KindParent {
			return &ValidationError{
				Reason: "track task is not parented by a parent task",
				Context: []ContextLine{
					{Key: "task hs_kind", Value: string(meta.Kind)},
					{Key: "parent hs_kind", Value: kindOrPlaceholder(parentMeta.Kind)},
				},
				Fixes: []string{
					fmt.Sprintf("hs task link %s --parent <parent-id>", idOrPlaceholder(id)),
				},
			}
		}
		if meta.Track == "" {
			return &ValidationError{
				Reason: "track tasks must declare a track name",
				Context: []ContextLine{
					{Key: "missing key", Value: "track"},
				},
				Fixes: []string{
					fmt.Sprintf("hs task set %s track <track-name>", idOrPlaceholder(id)),
				},
			}
		}
		if len(meta.Components) == 0 {
			return &ValidationError{
				Reason: "track tasks must declare their components",
				Context: []ContextLine{
					{Key: "missing key", Value: "components"},
				},
				Fixes: []string{
					fmt.Sprintf("hs task set %s components <name>[,<name>...]", idOrPlaceholder(id)),
				},
			}
		}

	case frontmatter.KindComponent:
		if parentMeta.Kind != frontmatter.KindTrack {
			return &ValidationError{
				Reason: "component task is not parented by a track task",
				Context: []ContextLine{
					{Key: "task hs_kind", Value: string(meta.Kind)},
					{Key: "parent hs_kind", Value: kindOrPlaceholder(parentMeta.Kind)},
				},
				Fixes: []string{
					fmt.Sprintf("hs task link %s --parent <track-id>", idOrPlaceholder(id)),
				},
			}
		}
		if meta.Stack != "" && parentMeta.Stack != "" && meta.Stack != parentMeta.Stack {
			return &ValidationError{
				Reason: "component stack does not match its track's stack",
				Context: []ContextLine{
					{Key: "component stack", Value: meta.Stack},
					{Key: "track stack", Value: parentMeta.Stack},
				},
				Fixes: []string{
					fmt.Sprintf("hs task set %s stack %s", idOrPlaceholder(id), parentMeta.Stack),
				},
			}
		}
	}

	return nil
}
