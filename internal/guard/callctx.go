package guard

import (
	"path/filepath"
	"strings"
)

// CallContext is the payload a guard invocation arrives with, typically
// a decoded JSON hook payload from the surrounding CLI. Only a handful
// of keys are meaningful; everything else is ignored.
type CallContext map[string]any

// TaskID resolves the acting task's identifier. Accepted shapes, in
// precedence order: a task_id string, an entity_id string, or a nested
// task mapping with an id string. No other shape resolves.
func (c CallContext) TaskID() string {
	for _, key := range []string{"task_id", "entity_id"} {
		if s, ok := c[key].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	if task, ok := c["task"].(map[string]any); ok {
		if s, ok := task["id"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ProjectRoot returns the project_root override as an absolute path,
// or empty when the context carries none. A value that cannot be made
// absolute reads as absent, leaving root resolution to the repository.
func (c CallContext) ProjectRoot() string {
	s, ok := c["project_root"].(string)
	if !ok {
		return ""
	}
	if s = strings.TrimSpace(s); s == "" {
		return ""
	}
	abs, err := filepath.Abs(s)
	if err != nil {
		return ""
	}
	return abs
}
