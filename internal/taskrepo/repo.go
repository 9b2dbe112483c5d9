// Package taskrepo resolves task identifiers to their backing markdown
// documents. Tasks live as individual files under the project's tasks
// directory, named by task id. The repository never caches: every
// lookup is a fresh filesystem read, matching the guard layer's
// read-only, no-shared-state model.
package taskrepo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultTasksDir is the directory under the project root holding
	// task documents.
	DefaultTasksDir = "tasks"

	// taskExt is the file extension of task documents.
	taskExt = ".md"

	// MinPrefixLength is the minimum id prefix accepted for short-id
	// resolution. Shorter prefixes only match as exact ids.
	MinPrefixLength = 4
)

// Task is a resolved handle to a task document.
type Task struct {
	ID   string
	Path string
}

// Repo locates task documents under a project root.
type Repo struct {
	root     string
	tasksDir string
}

// New creates a repository rooted at the given project directory. An
// empty root means the current working directory.
func New(root string) *Repo {
	return NewWithTasksDir(root, DefaultTasksDir)
}

// NewWithTasksDir creates a repository with a non-default tasks
// directory (relative to the project root).
func NewWithTasksDir(root, tasksDir string) *Repo {
	if root == "" {
		root = "."
	}
	if tasksDir == "" {
		tasksDir = DefaultTasksDir
	}
	return &Repo{root: root, tasksDir: tasksDir}
}

// Root returns the project root this repository resolves against.
func (r *Repo) Root() string {
	return r.root
}

// TasksPath returns the absolute-or-relative path of the tasks
// directory.
func (r *Repo) TasksPath() string {
	return filepath.Join(r.root, r.tasksDir)
}

// GetPath resolves a task id to its document path. The id is matched
// exactly first; failing that, a unique filename prefix of at least
// MinPrefixLength characters resolves too. Returns NotFoundError when
// nothing matches and AmbiguousError when a prefix matches more than
// one document.
func (r *Repo) GetPath(id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("task id cannot be empty")
	}

	exact := filepath.Join(r.TasksPath(), id+taskExt)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, nil
	}

	if len(id) < MinPrefixLength {
		return "", &NotFoundError{ID: id}
	}

	entries, err := os.ReadDir(r.TasksPath())
	if err != nil {
		if os.IsNotExist(err) {
			return "", &NotFoundError{ID: id}
		}
		return "", fmt.Errorf("failed to read tasks directory: %w", err)
	}

	var matches []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, taskExt) {
			continue
		}
		if strings.HasPrefix(strings.TrimSuffix(name, taskExt), id) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ID: id}
	case 1:
		return filepath.Join(r.TasksPath(), matches[0]), nil
	default:
		ids := make([]string, len(matches))
		for i, name := range matches {
			ids[i] = strings.TrimSuffix(name, taskExt)
		}
		return "", &AmbiguousError{ID: id, Matches: ids}
	}
}

// Get resolves a task id to a Task handle. Returns (nil, nil) when no
// document matches, mirroring a repository "or none" lookup; ambiguity
// and I/O problems surface as errors.
func (r *Repo) Get(id string) (*Task, error) {
	path, err := r.GetPath(id)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &Task{
		ID:   strings.TrimSuffix(filepath.Base(path), taskExt),
		Path: path,
	}, nil
}

// NotFoundError indicates no task document matched the id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no task found matching '%s'", e.ID)
}

// AmbiguousError indicates an id prefix matched multiple documents.
type AmbiguousError struct {
	ID      string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous task id '%s' matches %d documents: %s",
		e.ID, len(e.Matches), strings.Join(e.Matches, ", "))
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguous checks if an error is an AmbiguousError.
func IsAmbiguous(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
