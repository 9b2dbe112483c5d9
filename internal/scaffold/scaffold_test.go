package scaffold

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edisonhq/happy-stacks/internal/guard"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// scaffoldHierarchy creates a parent, a track under it, and a
// component under the track, returning all three results.
func scaffoldHierarchy(t *testing.T, root string) (parent, track, component *Result) {
	t.Helper()

	parent, err := Create(Options{
		Root:  root,
		Kind:  frontmatter.KindParent,
		Title: "Payments revamp",
	})
	require.NoError(t, err)

	track, err = Create(Options{
		Root:       root,
		Kind:       frontmatter.KindTrack,
		Title:      "Checkout track",
		Parent:     parent.ID,
		Stack:      "s1",
		Track:      "checkout",
		Components: []string{"api"},
	})
	require.NoError(t, err)

	component, err = Create(Options{
		Root:      root,
		Kind:      frontmatter.KindComponent,
		Title:     "API handler",
		Parent:    track.ID,
		Component: "api",
	})
	require.NoError(t, err)

	return parent, track, component
}

func readMeta(t *testing.T, path string) frontmatter.Meta {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := frontmatter.Parse(string(data))
	require.NoError(t, err)
	return doc.Frontmatter.Meta()
}

func TestCreateParent(t *testing.T) {
	root := t.TempDir()

	result, err := Create(Options{Root: root, Kind: frontmatter.KindParent, Title: "Payments revamp"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.ID, "payments-revamp-"), "id is slug plus suffix, got %s", result.ID)

	meta := readMeta(t, result.Path)
	assert.Equal(t, frontmatter.KindParent, meta.Kind)
	assert.Equal(t, "todo", meta.Status)
	assert.Empty(t, meta.Relationships)
}

func TestCreateTrack(t *testing.T) {
	root := t.TempDir()
	parent, track, _ := scaffoldHierarchy(t, root)

	meta := readMeta(t, track.Path)
	assert.Equal(t, frontmatter.KindTrack, meta.Kind)
	assert.Equal(t, "s1", meta.Stack)
	assert.Equal(t, "checkout", meta.Track)
	assert.Equal(t, []string{"api"}, meta.Components)
	assert.Equal(t, parent.ID, meta.ParentTarget())
	assert.Equal(t, parent.ID, meta.BaseTask, "base_task defaults to the parent")
}

func TestCreateComponent(t *testing.T) {
	root := t.TempDir()
	parent, track, component := scaffoldHierarchy(t, root)

	meta := readMeta(t, component.Path)
	assert.Equal(t, frontmatter.KindComponent, meta.Kind)
	assert.Equal(t, "s1", meta.Stack, "stack inherited from the track")
	assert.Equal(t, "api", meta.Component)
	assert.Equal(t, parent.ID, meta.BaseTask, "base_task inherited through the track")
	assert.Equal(t, "edison/"+component.ID, meta.BaseWorktree)
	assert.Equal(t, track.ID, meta.ParentTarget())
}

func TestCreateValidation(t *testing.T) {
	root := t.TempDir()

	testCases := []struct {
		name   string
		opts   Options
		errMsg string
	}{
		{
			name:   "invalid kind",
			opts:   Options{Root: root, Kind: "epic", Title: "x"},
			errMsg: "unknown hs_kind",
		},
		{
			name:   "empty title",
			opts:   Options{Root: root, Kind: frontmatter.KindParent, Title: "  "},
			errMsg: "title is required",
		},
		{
			name:   "track without parent",
			opts:   Options{Root: root, Kind: frontmatter.KindTrack, Title: "x"},
			errMsg: "require --parent",
		},
		{
			name:   "track with missing parent",
			opts:   Options{Root: root, Kind: frontmatter.KindTrack, Title: "x", Parent: "nope-missing"},
			errMsg: "parent task not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Create(tc.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestCreateRejectsWrongParentKind(t *testing.T) {
	root := t.TempDir()
	parent, _, _ := scaffoldHierarchy(t, root)

	// A component must hang off a track, not a parent.
	_, err := Create(Options{
		Root:      root,
		Kind:      frontmatter.KindComponent,
		Title:     "Misplaced",
		Parent:    parent.ID,
		Component: "api",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `want "track"`)
}

func TestScaffoldedHierarchyPassesGuards(t *testing.T) {
	root := t.TempDir()
	_, _, component := scaffoldHierarchy(t, root)

	t.Setenv(guard.EnvStack, "s1")
	t.Setenv(guard.EnvStackLegacy, "")
	t.Setenv("HAPPY_STACKS_COMPONENT_DIR_API", "/repo/components/.worktrees/api")

	g := guard.New(guard.Options{Root: root})
	ok, err := g.CheckStart(guard.CallContext{"task_id": component.ID})
	require.NoError(t, err)
	assert.True(t, ok, "freshly scaffolded component task is startable")
}
