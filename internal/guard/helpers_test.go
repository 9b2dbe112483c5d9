package guard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edisonhq/happy-stacks/internal/taskrepo"
)

// newTestProject creates a temp project root with a tasks directory
// and clears every stack-related environment variable so tests control
// the environment fully via t.Setenv.
func newTestProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tasks"), 0755))

	t.Setenv(EnvStack, "")
	t.Setenv(EnvStackLegacy, "")
	return root
}

// writeTask writes a task document under the project's tasks directory.
func writeTask(t *testing.T, root, id, content string) {
	t.Helper()
	path := filepath.Join(root, "tasks", id+".md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// testRepo returns a repository over the test project.
func testRepo(root string) *taskrepo.Repo {
	return taskrepo.New(root)
}

// allowBase is a base predicate that always passes.
func allowBase(CallContext) (bool, error) {
	return true, nil
}
