package frontmatter

import "fmt"

// Kind classifies a Happy Stacks task within the parent → track →
// component hierarchy.
type Kind string

const (
	// KindParent represents an umbrella task spanning one or more tracks.
	// Parent tasks are never started or finished directly.
	KindParent Kind = "parent"

	// KindTrack represents an integration-level task grouping component
	// tasks toward a shared stack.
	KindTrack Kind = "track"

	// KindComponent represents a task implementing a single component
	// inside its own worktree checkout.
	KindComponent Kind = "component"
)

// Validate checks if the Kind is a valid enum value.
func (k Kind) Validate() error {
	switch k {
	case KindParent, KindTrack, KindComponent:
		return nil
	default:
		return fmt.Errorf("unknown hs_kind: %q", k)
	}
}

// Meta is the typed view over a task's front-matter, extracted once at
// load time so rule checks never re-inspect the raw mapping.
type Meta struct {
	Kind          Kind
	Stack         string
	Track         string
	Component     string
	Components    []string
	BaseTask      string
	BaseWorktree  string
	Status        string
	Relationships []Relationship
}

// Meta builds the typed view from the raw mapping. Missing fields read
// as zero values; validation is the caller's responsibility.
func (f Frontmatter) Meta() Meta {
	return Meta{
		Kind:          Kind(f.String("hs_kind")),
		Stack:         f.String("stack"),
		Track:         f.String("track"),
		Component:     f.String("component"),
		Components:    f.StringList("components"),
		BaseTask:      f.String("base_task"),
		BaseWorktree:  f.String("base_worktree"),
		Status:        f.String("status"),
		Relationships: f.Relationships(),
	}
}

// ParentTarget returns the target id of the first "parent"-type
// relationship, or empty if the task declares none.
func (m Meta) ParentTarget() string {
	for _, rel := range m.Relationships {
		if rel.Type == "parent" {
			return rel.Target
		}
	}
	return ""
}

// ComponentSet derives the components this task operates on. Track
// tasks take the components field as-is; component tasks prefer the
// singular component field, falling back to components. Cardinality
// rules (non-empty, exactly-one for components) are enforced by the
// guard layer, not here.
func (m Meta) ComponentSet() []string {
	if m.Kind == KindComponent && m.Component != "" {
		return []string{m.Component}
	}
	return m.Components
}
