package show

// Message constants
const (
	MsgShort = "Preview the structure a template describes"
	MsgLong  = `The 'show-structure' command parses a template and renders the
directory tree it would create, without touching the filesystem.

Entries are listed in the same order generate-structure would create
them; append-mode files are marked.`

	MsgExample = `  # Preview template.yaml
  scfldr show-structure

  # Preview a specific template
  scfldr show-structure --template project.yaml`
)
