package template

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/scfldr/pkg/errors"
	"github.com/arthur-debert/scfldr/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load reads a template file and parses it into a tree. The codec is
// picked by extension: .toml uses TOML, everything else (including the
// default template.yaml) is decoded as YAML.
func Load(fs types.FS, path string) (*Node, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read template %s", path)
	}

	var raw interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var mapping map[string]interface{}
		if err := toml.Unmarshal(data, &mapping); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateParse, "invalid TOML in %s", path)
		}
		raw = mapping
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateParse, "invalid YAML in %s", path)
		}
	}

	mapping, err := asMapping(raw)
	if err != nil {
		return nil, err
	}
	return Parse(mapping)
}

// asMapping asserts that the decoded document root is a string-keyed mapping
func asMapping(raw interface{}) (map[string]interface{}, error) {
	switch v := raw.(type) {
	case map[string]interface{}:
		return v, nil
	case map[interface{}]interface{}:
		return normalizeKeys(v, "template root")
	case nil:
		return nil, errors.New(errors.ErrTemplateInvalid, "template is empty")
	default:
		return nil, errors.Newf(errors.ErrTemplateInvalid,
			"template root must be a mapping, got %T", raw)
	}
}
