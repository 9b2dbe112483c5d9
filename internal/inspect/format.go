// Package inspect renders a task's guard-relevant metadata for the
// `hs-guard show` command: the front-matter fields the guards consume
// plus how each declared component resolves in the current
// environment.
package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/edisonhq/happy-stacks/internal/guard"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// ComponentStatus is one declared component and its environment
// resolution state.
type ComponentStatus struct {
	Name     string `json:"name"`
	Dir      string `json:"dir,omitempty"`
	Variable string `json:"variable"`
	Worktree bool   `json:"worktree"`
}

// TaskReport is the guard-relevant view of a single task.
type TaskReport struct {
	ID           string            `json:"id"`
	Path         string            `json:"path"`
	Kind         string            `json:"hs_kind"`
	Status       string            `json:"status,omitempty"`
	Stack        string            `json:"stack,omitempty"`
	ActiveStack  string            `json:"active_stack,omitempty"`
	Track        string            `json:"track,omitempty"`
	BaseTask     string            `json:"base_task,omitempty"`
	BaseWorktree string            `json:"base_worktree,omitempty"`
	ParentID     string            `json:"parent_id,omitempty"`
	Components   []ComponentStatus `json:"components,omitempty"`
}

// BuildReport assembles the report for a task from its parsed
// front-matter and the current environment.
func BuildReport(id, path string, meta frontmatter.Meta) *TaskReport {
	report := &TaskReport{
		ID:           id,
		Path:         path,
		Kind:         string(meta.Kind),
		Status:       meta.Status,
		Stack:        meta.Stack,
		ActiveStack:  guard.ActiveStack(),
		Track:        meta.Track,
		BaseTask:     meta.BaseTask,
		BaseWorktree: meta.BaseWorktree,
		ParentID:     meta.ParentTarget(),
	}

	for _, name := range meta.ComponentSet() {
		primary, _ := guard.ComponentDirVars(name)
		dir := guard.ComponentDir(name)
		report.Components = append(report.Components, ComponentStatus{
			Name:     name,
			Dir:      dir,
			Variable: primary,
			Worktree: dir != "" && guard.InWorktree(dir),
		})
	}

	return report
}

// FormatTable writes the report as a human-readable field table.
func FormatTable(w io.Writer, r *TaskReport) {
	fmt.Fprintf(w, "Task '%s' (%s)\n\n", r.ID, r.Path)

	writeField(w, "hs_kind", r.Kind)
	writeField(w, "status", r.Status)
	writeField(w, "stack", r.Stack)
	writeField(w, "active stack", r.ActiveStack)
	writeField(w, "track", r.Track)
	writeField(w, "base_task", r.BaseTask)
	writeField(w, "base_worktree", r.BaseWorktree)
	writeField(w, "parent", r.ParentID)

	if len(r.Components) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%-18s %-9s %s\n", "COMPONENT", "WORKTREE", "DIR")
	fmt.Fprintf(w, "%-18s %-9s %s\n", "------------------", "---------", "----------------------------------------")
	for _, c := range r.Components {
		dir := c.Dir
		if dir == "" {
			dir = "(unset: " + c.Variable + ")"
		}
		fmt.Fprintf(w, "%-18s %-9s %s\n", c.Name, formatWorktree(c), dir)
	}
}

// FormatJSON writes the report as pretty-printed JSON.
func FormatJSON(w io.Writer, r *TaskReport) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func writeField(w io.Writer, name, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Fprintf(w, "%-15s %s\n", name+":", value)
}

func formatWorktree(c ComponentStatus) string {
	if c.Dir == "" {
		return "-"
	}
	if c.Worktree {
		return "yes"
	}
	return "NO"
}
