// Package frontmatter provides parsing and typed access to the YAML
// front-matter block at the head of Happy Stacks task documents. The
// front-matter is the single source of truth the guard layer reads:
// task classification (hs_kind), stack membership, component
// declarations, and parent relationships all live here.
//
// Parsing is deliberately tolerant at the value level (a missing or
// mistyped field reads as empty) and strict at the block level (a
// document without a well-formed front-matter block yields an error so
// callers can fail closed).
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter is the line that opens and closes a front-matter block.
const delimiter = "---"

// Document is a parsed task document: the front-matter mapping and the
// markdown body that follows it.
type Document struct {
	Frontmatter Frontmatter
	Body        string
}

// Frontmatter is the raw key-value mapping extracted from a document
// header. Values are heterogeneous (strings, lists, nested mappings);
// use the typed accessors rather than indexing directly.
type Frontmatter map[string]any

// Parse extracts the front-matter block from a task document. The
// document must open with a `---` line and close the block with
// another; anything after the closing line is the body. Returns an
// error if the block is absent, unterminated, or not a YAML mapping.
func Parse(text string) (Document, error) {
	rest, ok := strings.CutPrefix(text, delimiter+"\n")
	if !ok {
		// Tolerate CRLF documents from Windows checkouts.
		rest, ok = strings.CutPrefix(text, delimiter+"\r\n")
	}
	if !ok {
		return Document{}, errors.New("missing front-matter opening delimiter")
	}

	lines := strings.Split(rest, "\n")
	var block []string
	body := ""
	closed := false
	for i, line := range lines {
		if strings.TrimRight(line, "\r") == delimiter {
			closed = true
			body = strings.Join(lines[i+1:], "\n")
			break
		}
		block = append(block, line)
	}
	if !closed {
		return Document{}, errors.New("missing front-matter closing delimiter")
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &raw); err != nil {
		return Document{}, fmt.Errorf("invalid front-matter YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	return Document{
		Frontmatter: Frontmatter(raw),
		Body:        strings.TrimLeft(body, "\n"),
	}, nil
}

// String returns the value under key as a trimmed string. Missing keys
// and non-string values read as empty.
func (f Frontmatter) String(key string) string {
	s, _ := f[key].(string)
	return strings.TrimSpace(s)
}

// StringList returns the value under key as a list of non-empty
// trimmed strings. Accepts either a YAML sequence of strings or a
// single comma-joined string; anything else reads as nil.
func (f Frontmatter) StringList(key string) []string {
	var parts []string
	switch v := f[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	case string:
		parts = strings.Split(v, ",")
	default:
		return nil
	}

	var out []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Relationship links a task to another task. Only the "parent" type is
// meaningful to the guard layer.
type Relationship struct {
	Type   string
	Target string
}

// Relationships returns the entries of the `relationships` field.
// Entries that are not mappings or lack a type or target are skipped
// rather than treated as errors.
func (f Frontmatter) Relationships() []Relationship {
	items, _ := f["relationships"].([]any)
	var out []Relationship
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		relType, _ := entry["type"].(string)
		target, _ := entry["target"].(string)
		rel := Relationship{
			Type:   strings.TrimSpace(relType),
			Target: strings.TrimSpace(target),
		}
		if rel.Type == "" || rel.Target == "" {
			continue
		}
		out = append(out, rel)
	}
	return out
}
