package guard

import (
	"os"
	"strings"
)

// Environment variables consumed by the guard layer. Every lookup
// checks the HAPPY_STACKS_ name first and falls back to the
// HAPPY_LOCAL_ alias kept for pre-rename installs.
const (
	// EnvStack names the active stack set by the stack wrapper.
	EnvStack = "HAPPY_STACKS_STACK"

	// EnvStackLegacy is the legacy alias for EnvStack.
	EnvStackLegacy = "HAPPY_LOCAL_STACK"

	envComponentDirPrefix       = "HAPPY_STACKS_COMPONENT_DIR_"
	envComponentDirLegacyPrefix = "HAPPY_LOCAL_COMPONENT_DIR_"
)

// WorktreeSegment is the path segment every component directory
// override must contain. Paths without it point at default checkouts,
// which the guards refuse to operate on.
const WorktreeSegment = "/components/.worktrees/"

// lookupEnv returns the first non-empty value among the primary
// variable and its legacy alias. All primary/legacy fallback goes
// through here.
func lookupEnv(primary, legacy string) string {
	if v := strings.TrimSpace(os.Getenv(primary)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(legacy))
}

// ActiveStack returns the stack name exported by the stack wrapper, or
// empty when running outside one.
func ActiveStack() string {
	return lookupEnv(EnvStack, EnvStackLegacy)
}

// ComponentDirVars returns the primary and legacy environment variable
// names carrying a component's directory override. The component name
// is upper-cased with hyphens mapped to underscores.
func ComponentDirVars(component string) (primary, legacy string) {
	suffix := strings.ToUpper(strings.ReplaceAll(component, "-", "_"))
	return envComponentDirPrefix + suffix, envComponentDirLegacyPrefix + suffix
}

// ComponentDir returns the directory override for a component, or
// empty when neither variable is set.
func ComponentDir(component string) string {
	primary, legacy := ComponentDirVars(component)
	return lookupEnv(primary, legacy)
}

// InWorktree reports whether a component directory path points inside
// the worktree area. Separators are normalized so Windows-style paths
// are judged the same way.
func InWorktree(dir string) bool {
	return strings.Contains(strings.ReplaceAll(dir, "\\", "/"), WorktreeSegment)
}
