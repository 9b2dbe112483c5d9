package guard

import (
	"log"
	"os"

	"github.com/edisonhq/happy-stacks/internal/taskrepo"
	"github.com/edisonhq/happy-stacks/pkg/frontmatter"
)

// loadTaskMeta resolves a task id to its document and parses the
// front-matter into a typed view. Every failure - unresolvable path,
// unreadable file, malformed front-matter - degrades to ok=false with
// an empty Meta; callers decide whether "no metadata" is fatal. The
// loader itself never raises.
func loadTaskMeta(repo *taskrepo.Repo, id string) (frontmatter.Meta, bool) {
	path, err := repo.GetPath(id)
	if err != nil {
		log.Printf("[DEBUG] no document for task %s: %v", id, err)
		return frontmatter.Meta{}, false
	}
	return loadMetaFromPath(path)
}

// loadMetaFromPath reads and parses a task document's front-matter,
// degrading to ok=false on any failure.
func loadMetaFromPath(path string) (frontmatter.Meta, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[DEBUG] failed to read task document %s: %v", path, err)
		return frontmatter.Meta{}, false
	}

	doc, err := frontmatter.Parse(string(data))
	if err != nil {
		log.Printf("[DEBUG] failed to parse frontmatter in %s: %v", path, err)
		return frontmatter.Meta{}, false
	}

	return doc.Frontmatter.Meta(), true
}
