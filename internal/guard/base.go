package guard

import (
	"fmt"
	"strings"
)

// Builtin base predicates: the generic tracker's status gating,
// re-read from the same document the rules will inspect. A task starts
// from an open status and finishes from an active one. External
// callers can replace these via Options.
func (g *Guard) builtinStart(cc CallContext) (bool, error) {
	return g.statusIn(cc, "", "todo", "to do", "open")
}

func (g *Guard) builtinFinish(cc CallContext) (bool, error) {
	return g.statusIn(cc, "in-progress", "in progress", "doing", "started")
}

// statusIn checks the document's status field against the allowed set.
// A missing document is an error here (fail-closed by runBase); an
// unresolvable id is a plain refusal.
func (g *Guard) statusIn(cc CallContext, allowed ...string) (bool, error) {
	id := cc.TaskID()
	if id == "" {
		return false, nil
	}

	meta, ok := loadTaskMeta(g.repoFor(cc), id)
	if !ok {
		return false, fmt.Errorf("task %s: no readable document", id)
	}

	status := strings.ToLower(meta.Status)
	for _, s := range allowed {
		if status == s {
			return true, nil
		}
	}
	return false, nil
}
