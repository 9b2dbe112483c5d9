// Package guard implements the Happy Stacks lifecycle policy guards:
// the checks a task must pass before it may be started or finished.
// Tasks are classified parent → track → component; the guards enforce
// stack agreement with the environment, the hierarchy between a task
// and its parent, base-task linkage, and worktree isolation of every
// declared component.
//
// Two outcome channels exist. A base-predicate refusal or an
// unresolvable task id yields a plain false with no error. Every Happy
// Stacks rule violation yields a *ValidationError carrying remediation
// commands. The guards never mutate anything: each call is a fresh
// read of documents and environment.
package guard

import (
	"log"

	"github.com/edisonhq/happy-stacks/internal/taskrepo"
)

// Predicate is the external lifecycle gate consulted before the Happy
// Stacks rules run, typically the tracker's builtin start/finish
// check. Any error it returns is fail-closed, never propagated.
type Predicate func(cc CallContext) (bool, error)

// Options configures a Guard. Zero values select the conventional
// defaults: current directory root, `tasks` directory, builtin
// status-gated base predicates.
type Options struct {
	Root     string
	TasksDir string
	Start    Predicate
	Finish   Predicate
}

// Guard evaluates the start and finish policies for Happy Stacks
// tasks. Safe for concurrent use: it holds no mutable state.
type Guard struct {
	root     string
	tasksDir string
	start    Predicate
	finish   Predicate
}

// New creates a Guard from the given options.
func New(opts Options) *Guard {
	g := &Guard{
		root:     opts.Root,
		tasksDir: opts.TasksDir,
		start:    opts.Start,
		finish:   opts.Finish,
	}
	if g.start == nil {
		g.start = g.builtinStart
	}
	if g.finish == nil {
		g.finish = g.builtinFinish
	}
	return g
}

// CheckStart decides whether the task named by the call context may
// transition to started. Returns (false, nil) when the base predicate
// refuses or no task id resolves; returns a *ValidationError when a
// Happy Stacks rule is violated; returns (true, nil) only when every
// check passes.
func (g *Guard) CheckStart(cc CallContext) (bool, error) {
	return g.check(cc, g.start)
}

// CheckFinish decides whether the task named by the call context may
// transition to finished. The rule set is identical to CheckStart;
// only the delegated base predicate differs.
func (g *Guard) CheckFinish(cc CallContext) (bool, error) {
	return g.check(cc, g.finish)
}

func (g *Guard) check(cc CallContext, base Predicate) (bool, error) {
	if out := runBase(base, cc); !out.ok {
		return false, nil
	}

	id := cc.TaskID()
	if id == "" {
		return false, nil
	}

	repo := g.repoFor(cc)
	meta, ok := loadTaskMeta(repo, id)
	if !ok {
		return false, &ValidationError{
			Reason: "cannot read task frontmatter",
			Context: []ContextLine{
				{Key: "task id", Value: id},
			},
			Fixes: []string{
				"hs task show " + id + "  (verify the document exists and opens with a frontmatter block)",
			},
		}
	}

	if err := checkStackContext(id, meta); err != nil {
		return false, err
	}
	if err := checkParentStructure(repo, id, meta); err != nil {
		return false, err
	}
	if err := checkBaseMetadata(id, meta); err != nil {
		return false, err
	}
	if err := checkWorktreeComponentDirs(id, meta); err != nil {
		return false, err
	}

	return true, nil
}

// repoFor builds the repository for one invocation, honoring a
// project_root override in the call context.
func (g *Guard) repoFor(cc CallContext) *taskrepo.Repo {
	root := g.root
	if override := cc.ProjectRoot(); override != "" {
		root = override
	}
	return taskrepo.NewWithTasksDir(root, g.tasksDir)
}

// baseOutcome makes the fail-closed contract around the external
// predicate explicit: by the time the Happy Stacks rules run, the base
// decision is a plain boolean with no error channel left.
type baseOutcome struct {
	ok bool
}

// runBase invokes the base predicate and collapses any error into a
// refusal.
func runBase(p Predicate, cc CallContext) baseOutcome {
	ok, err := p(cc)
	if err != nil {
		log.Printf("[WARN] base lifecycle predicate failed: %v (treating as refusal)", err)
		return baseOutcome{ok: false}
	}
	return baseOutcome{ok: ok}
}
