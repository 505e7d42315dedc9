package generate

// Message constants
const (
	MsgShort = "Create the directory/file structure a template describes"
	MsgLong  = `The 'generate-structure' command parses a template and creates the
corresponding directories and files under the output root.

Existing directories are reused. Existing files are left untouched
unless the template entry uses append mode (content is always appended)
or --force is given (write-mode entries overwrite). When the output
root already exists and is not empty, the run refuses to start unless
--force is given.

Every visited path is reported with its outcome. Per-path failures do
not abort the run; unaffected parts of the tree are still created.`

	MsgExample = `  # Create the structure described by template.yaml in the current directory
  scfldr generate-structure

  # Generate into a fresh directory
  scfldr generate-structure --template project.yaml --output ./myproject

  # Overwrite existing files and allow a non-empty output directory
  scfldr generate-structure -t project.yaml -o ./myproject --force

  # Preview without writing anything
  scfldr generate-structure -t project.yaml --dry-run`
)
