package materialize

import (
	"path"

	"github.com/arthur-debert/scfldr/pkg/template"
)

// Entry is one row of a preview: a path the materializer would visit,
// labeled with its kind and, for files, the write mode.
type Entry struct {
	Path  string // slash-separated, relative to the output root
	Name  string
	Depth int
	Kind  template.Kind
	Mode  template.Mode
}

// Preview walks a template tree without touching the filesystem and
// returns the entries in exactly the order Materialize would visit
// them, so previews and real runs always agree on structure.
func Preview(root *template.Node) []Entry {
	entries := make([]Entry, 0)
	for _, child := range root.Children {
		previewNode(child, child.Name, 0, &entries)
	}
	return entries
}

func previewNode(node *template.Node, at string, depth int, entries *[]Entry) {
	entry := Entry{
		Path:  at,
		Name:  node.Name,
		Depth: depth,
		Kind:  node.Kind,
	}
	if !node.IsDir() {
		entry.Mode = node.Mode
	}
	*entries = append(*entries, entry)

	for _, child := range node.Children {
		previewNode(child, path.Join(at, child.Name), depth+1, entries)
	}
}
