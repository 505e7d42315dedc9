package commands

// Message constants for the root command
const (
	MsgRootShort = "Generate folder/file structures from declarative templates"
	MsgRootLong  = `scfldr materializes a directory and file tree on disk from a YAML (or
TOML) template. A template is a nested mapping: string values become
files, mappings become directories, and a mapping with a 'content' key
is a file with optional write/append mode.

Preview a template with show-structure, then create it with
generate-structure.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
)
