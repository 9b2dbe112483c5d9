// Package scaffold creates task documents whose front-matter satisfies
// the Happy Stacks guards: a parent umbrella, tracks linked to it, and
// component tasks linked to a track with base-task and base-worktree
// fields pre-filled.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/edisonhq/happy-stacks/internal/taskrepo"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// Options describes the task document to create.
type Options struct {
	Root       string
	TasksDir   string
	Kind       frontmatter.Kind
	Title      string
	Parent     string   // parent task id, required for track and component kinds
	Stack      string   // required for track and component kinds (component inherits from its track when empty)
	Track      string   // track name, track kind only
	Components []string // track kind only
	Component  string   // component kind only
	BaseTask   string   // inherited from the parent track when empty
}

// Result reports the created document.
type Result struct {
	ID   string
	Path string
}

// docMeta is the front-matter layout written to new documents. Field
// order here is the order in the file.
type docMeta struct {
	Title         string     `yaml:"title"`
	Status        string     `yaml:"status"`
	HSKind        string     `yaml:"hs_kind"`
	Stack         string     `yaml:"stack,omitempty"`
	Track         string     `yaml:"track,omitempty"`
	Components    []string   `yaml:"components,omitempty"`
	Component     string     `yaml:"component,omitempty"`
	BaseTask      string     `yaml:"base_task,omitempty"`
	BaseWorktree  string     `yaml:"base_worktree,omitempty"`
	Relationships []relEntry `yaml:"relationships,omitempty"`
}

type relEntry struct {
	Type   string `yaml:"type"`
	Target string `yaml:"target"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Create validates the options and writes the task document. Existing
// documents are never overwritten.
func Create(opts Options) (*Result, error) {
	if err := opts.Kind.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(opts.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}

	repo := taskrepo.NewWithTasksDir(opts.Root, opts.TasksDir)

	id := newID(opts.Title)
	meta := docMeta{
		Title:  opts.Title,
		Status: "todo",
		HSKind: string(opts.Kind),
	}

	switch opts.Kind {
	case frontmatter.KindParent:
		// Umbrella tasks carry no stack or linkage.

	case frontmatter.KindTrack:
		if _, err := resolveParent(repo, opts.Parent, frontmatter.KindParent); err != nil {
			return nil, err
		}
		if opts.Stack == "" {
			return nil, fmt.Errorf("track tasks require --stack")
		}
		if opts.Track == "" {
			return nil, fmt.Errorf("track tasks require --track")
		}
		if len(opts.Components) == 0 {
			return nil, fmt.Errorf("track tasks require --components")
		}
		meta.Stack = opts.Stack
		meta.Track = opts.Track
		meta.Components = opts.Components
		meta.BaseTask = opts.BaseTask
		meta.Relationships = []relEntry{{Type: "parent", Target: opts.Parent}}
		if meta.BaseTask == "" {
			meta.BaseTask = opts.Parent
		}

	case frontmatter.KindComponent:
		parentMeta, err := resolveParent(repo, opts.Parent, frontmatter.KindTrack)
		if err != nil {
			return nil, err
		}
		if opts.Component == "" {
			return nil, fmt.Errorf("component tasks require --component")
		}
		meta.Stack = opts.Stack
		if meta.Stack == "" {
			meta.Stack = parentMeta.Stack
		}
		if meta.Stack == "" {
			return nil, fmt.Errorf("component tasks require --stack (parent track declares none)")
		}
		meta.Component = opts.Component
		meta.BaseTask = opts.BaseTask
		if meta.BaseTask == "" {
			meta.BaseTask = parentMeta.BaseTask
		}
		if meta.BaseTask == "" {
			meta.BaseTask = opts.Parent
		}
		meta.BaseWorktree = "edison/" + id
		meta.Relationships = []relEntry{{Type: "parent", Target: opts.Parent}}
	}

	path := filepath.Join(repo.TasksPath(), id+".md")
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("task document already exists: %s", path)
	}
	if err := os.MkdirAll(repo.TasksPath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create tasks directory: %w", err)
	}

	content, err := render(meta)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, fmt.Errorf("failed to write task document: %w", err)
	}

	return &Result{ID: id, Path: path}, nil
}

// resolveParent looks up the parent task and verifies its kind.
func resolveParent(repo *taskrepo.Repo, parentID string, wantKind frontmatter.Kind) (frontmatter.Meta, error) {
	if parentID == "" {
		return frontmatter.Meta{}, fmt.Errorf("%s tasks require --parent", childKind(wantKind))
	}

	parent, err := repo.Get(parentID)
	if err != nil {
		return frontmatter.Meta{}, err
	}
	if parent == nil {
		return frontmatter.Meta{}, fmt.Errorf("parent task not found: %s", parentID)
	}

	data, err := os.ReadFile(parent.Path)
	if err != nil {
		return frontmatter.Meta{}, fmt.Errorf("failed to read parent document: %w", err)
	}
	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		return frontmatter.Meta{}, fmt.Errorf("parent document %s: %w", parent.ID, err)
	}

	meta := doc.Frontmatter.Meta()
	if meta.Kind != wantKind {
		return frontmatter.Meta{}, fmt.Errorf("parent task %s has hs_kind %q, want %q", parent.ID, meta.Kind, wantKind)
	}
	return meta, nil
}

// childKind names the kind being scaffolded under a parent of wantKind.
func childKind(wantKind frontmatter.Kind) frontmatter.Kind {
	if wantKind == frontmatter.KindParent {
		return frontmatter.KindTrack
	}
	return frontmatter.KindComponent
}

// newID derives a document id from the title plus a short unique
// suffix, keeping filenames readable while avoiding collisions.
func newID(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "task"
	}
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return slug + "-" + uuid.NewString()[:8]
}

// render emits the document: front-matter block plus a title heading.
func render(meta docMeta) ([]byte, error) {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(data)
	b.WriteString("---\n\n")
	b.WriteString("# " + meta.Title + "\n")
	return []byte(b.String()), nil
}
