package taskrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo creates a repo over a temp project with the given task
// document ids.
func newTestRepo(t *testing.T, ids ...string) *Repo {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tasks"), 0755))
	for _, id := range ids {
		path := filepath.Join(root, "tasks", id+".md")
		require.NoError(t, os.WriteFile(path, []byte("---\nhs_kind: component\n---\n"), 0644))
	}
	return New(root)
}

func TestGetPathExact(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2", "fix-logout-9b8c7d6e")

	path, err := repo.GetPath("fix-login-4f3a91c2")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo.Root(), "tasks", "fix-login-4f3a91c2.md"), path)
}

func TestGetPathPrefix(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2", "add-search-9b8c7d6e")

	path, err := repo.GetPath("fix-login")
	require.NoError(t, err)
	assert.Contains(t, path, "fix-login-4f3a91c2.md")
}

func TestGetPathAmbiguous(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2", "fix-logout-9b8c7d6e")

	_, err := repo.GetPath("fix-log")
	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))
	assert.Contains(t, err.Error(), "matches 2 documents")
}

func TestGetPathNotFound(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2")

	_, err := repo.GetPath("does-not-exist")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestGetPathShortPrefixOnlyMatchesExact(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2", "abc")

	// Below MinPrefixLength: no prefix scan, exact match still works.
	_, err := repo.GetPath("fix")
	assert.True(t, IsNotFound(err))

	path, err := repo.GetPath("abc")
	require.NoError(t, err)
	assert.Contains(t, path, "abc.md")
}

func TestGetPathEmptyID(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetPath("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestGetPathMissingTasksDir(t *testing.T) {
	repo := New(t.TempDir())

	_, err := repo.GetPath("anything-here")
	assert.True(t, IsNotFound(err))
}

func TestGet(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2")

	task, err := repo.Get("fix-login")
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, "fix-login-4f3a91c2", task.ID)
	assert.Contains(t, task.Path, "fix-login-4f3a91c2.md")
}

func TestGetNoneForMissing(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2")

	task, err := repo.Get("missing-task")
	require.NoError(t, err)
	assert.Nil(t, task)
}

func TestGetAmbiguousIsError(t *testing.T) {
	repo := newTestRepo(t, "fix-login-4f3a91c2", "fix-logout-9b8c7d6e")

	_, err := repo.Get("fix-log")
	require.Error(t, err)
	assert.True(t, IsAmbiguous(err))
}

func TestNewWithTasksDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "work", "items"), 0755))
	path := filepath.Join(root, "work", "items", "my-task-1234.md")
	require.NoError(t, os.WriteFile(path, []byte("---\n---\n"), 0644))

	repo := NewWithTasksDir(root, filepath.Join("work", "items"))
	got, err := repo.GetPath("my-task-1234")
	require.NoError(t, err)
	assert.Equal(t, path, got)
}
