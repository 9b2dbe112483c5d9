package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid document",
			text: "---\nhs_kind: component\nstack: s1\n---\n\n# Title\n",
		},
		{
			name: "valid document with empty block",
			text: "---\n---\nbody",
		},
		{
			name: "crlf line endings",
			text: "---\r\nhs_kind: track\r\n---\r\nbody",
		},
		{
			name:    "missing opening delimiter",
			text:    "hs_kind: component\n---\n",
			wantErr: true,
			errMsg:  "missing front-matter opening delimiter",
		},
		{
			name:    "empty document",
			text:    "",
			wantErr: true,
			errMsg:  "missing front-matter opening delimiter",
		},
		{
			name:    "unterminated block",
			text:    "---\nhs_kind: component\n",
			wantErr: true,
			errMsg:  "missing front-matter closing delimiter",
		},
		{
			name:    "non-mapping frontmatter",
			text:    "---\n- just\n- a list\n---\n",
			wantErr: true,
			errMsg:  "invalid front-matter YAML",
		},
		{
			name:    "malformed yaml",
			text:    "---\nhs_kind: [unclosed\n---\n",
			wantErr: true,
			errMsg:  "invalid front-matter YAML",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Parse(tc.text)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, doc.Frontmatter)
		})
	}
}

func TestParseBody(t *testing.T) {
	doc, err := Parse("---\nhs_kind: track\n---\n\n# Heading\n\ntext\n")
	require.NoError(t, err)

	assert.Equal(t, "track", doc.Frontmatter.String("hs_kind"))
	assert.Equal(t, "# Heading\n\ntext\n", doc.Body)
}

func TestFrontmatterString(t *testing.T) {
	fm := Frontmatter{
		"stack":   "  s1  ",
		"number":  42,
		"nothing": nil,
	}

	assert.Equal(t, "s1", fm.String("stack"))
	assert.Equal(t, "", fm.String("number"), "non-string values read as empty")
	assert.Equal(t, "", fm.String("nothing"))
	assert.Equal(t, "", fm.String("missing"))
}

func TestFrontmatterStringList(t *testing.T) {
	testCases := []struct {
		name  string
		value any
		want  []string
	}{
		{
			name:  "yaml sequence",
			value: []any{"api", "web"},
			want:  []string{"api", "web"},
		},
		{
			name:  "comma-joined string",
			value: "api, web ,cli",
			want:  []string{"api", "web", "cli"},
		},
		{
			name:  "single string",
			value: "api",
			want:  []string{"api"},
		},
		{
			name:  "empty entries dropped",
			value: "api,,  ,web",
			want:  []string{"api", "web"},
		},
		{
			name:  "non-string sequence entries dropped",
			value: []any{"api", 7, nil},
			want:  []string{"api"},
		},
		{
			name:  "empty string",
			value: "",
			want:  nil,
		},
		{
			name:  "non-list non-string",
			value: 42,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fm := Frontmatter{"components": tc.value}
			assert.Equal(t, tc.want, fm.StringList("components"))
		})
	}
}

func TestFrontmatterRelationships(t *testing.T) {
	fm := Frontmatter{
		"relationships": []any{
			map[string]any{"type": "parent", "target": "track-1"},
			map[string]any{"type": "blocks", "target": "other"},
			map[string]any{"type": "parent"}, // no target, skipped
			"not a mapping",                  // skipped
		},
	}

	rels := fm.Relationships()
	require.Len(t, rels, 2)
	assert.Equal(t, Relationship{Type: "parent", Target: "track-1"}, rels[0])
	assert.Equal(t, Relationship{Type: "blocks", Target: "other"}, rels[1])
}

func TestFrontmatterRelationshipsAbsent(t *testing.T) {
	assert.Empty(t, Frontmatter{}.Relationships())
	assert.Empty(t, Frontmatter{"relationships": "parent"}.Relationships())
}
