package template

import (
	"sort"

	"github.com/arthur-debert/scfldr/pkg/errors"
)

// Kind discriminates the two node variants
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
)

// String returns the kind name used in previews and reports
func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "directory"
}

// Mode is the write policy for a file node
type Mode string

const (
	ModeWrite  Mode = "w"
	ModeAppend Mode = "a"
)

// Node is one entry in a parsed template tree. A directory node carries
// Children (possibly empty); a file node carries Content and Mode.
// Trees are immutable once parsed.
type Node struct {
	Name     string
	Kind     Kind
	Content  string
	Mode     Mode
	Children []*Node
}

// IsDir reports whether the node is a directory
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// Parse builds the root directory node from a decoded template mapping.
//
// Classification follows the template format: a string value is a file
// written with mode "w", a mapping with a "content" key is a file with
// an optional "mode" of "w" or "a", and any other mapping is a nested
// directory (an empty mapping is an empty directory). Anything else is
// rejected. Path legality is not checked here; the materializer surfaces
// OS errors for bad names.
func Parse(raw map[string]interface{}) (*Node, error) {
	root := &Node{Kind: KindDirectory}
	children, err := parseChildren(raw, "")
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

func parseChildren(mapping map[string]interface{}, parent string) ([]*Node, error) {
	children := make([]*Node, 0, len(mapping))
	for name, value := range mapping {
		node, err := parseValue(name, value, join(parent, name))
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	sortChildren(children)
	return children, nil
}

func parseValue(name string, value interface{}, at string) (*Node, error) {
	switch v := value.(type) {
	case string:
		return &Node{Name: name, Kind: KindFile, Content: v, Mode: ModeWrite}, nil
	case map[string]interface{}:
		return parseMapping(name, v, at)
	case map[interface{}]interface{}:
		normalized, err := normalizeKeys(v, at)
		if err != nil {
			return nil, err
		}
		return parseMapping(name, normalized, at)
	case nil:
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"%s: value is null; use \"\" for an empty file or {} for an empty directory", at)
	default:
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"%s: unsupported value of type %T; expected a string or a mapping", at, value)
	}
}

func parseMapping(name string, mapping map[string]interface{}, at string) (*Node, error) {
	content, isFile := mapping["content"]
	if !isFile {
		children, err := parseChildren(mapping, at)
		if err != nil {
			return nil, err
		}
		return &Node{Name: name, Kind: KindDirectory, Children: children}, nil
	}

	node := &Node{Name: name, Kind: KindFile, Mode: ModeWrite}

	switch c := content.(type) {
	case string:
		node.Content = c
	case nil:
		// content with a null value means an empty file
	default:
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"%s: content must be a string, got %T", at, content)
	}

	for key, value := range mapping {
		switch key {
		case "content":
		case "mode":
			mode, ok := value.(string)
			if !ok || (mode != string(ModeWrite) && mode != string(ModeAppend)) {
				return nil, errors.Newf(errors.ErrTemplateInvalid,
					"%s: mode must be %q or %q, got %v", at, ModeWrite, ModeAppend, value)
			}
			node.Mode = Mode(mode)
		default:
			return nil, errors.Newf(errors.ErrTemplateInvalid,
				"%s: unexpected key %q next to content", at, key)
		}
	}

	return node, nil
}

// normalizeKeys converts a loosely typed mapping to string keys, rejecting
// keys that do not decode as plain strings (e.g. bare numbers in YAML).
func normalizeKeys(mapping map[interface{}]interface{}, at string) (map[string]interface{}, error) {
	normalized := make(map[string]interface{}, len(mapping))
	for key, value := range mapping {
		s, ok := key.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrTemplateInvalid,
				"%s: key %v is not a string", at, key)
		}
		normalized[s] = value
	}
	return normalized, nil
}

// sortChildren fixes the traversal order: directories first, then files,
// each sorted by name. Previews and materialization both rely on this.
func sortChildren(children []*Node) {
	sort.SliceStable(children, func(i, j int) bool {
		if children[i].IsDir() != children[j].IsDir() {
			return children[i].IsDir()
		}
		return children[i].Name < children[j].Name
	})
}

func join(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
