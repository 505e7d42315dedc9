package template_test

import (
	"testing"

	"github.com/arthur-debert/scfldr/pkg/errors"
	"github.com/arthur-debert/scfldr/pkg/template"
	"github.com/arthur-debert/scfldr/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAML(t *testing.T) {
	fs := testutil.NewMemoryFS()
	body := `
src:
  main.go: |
    package main
  util: {}
notes.txt:
  content: remember
  mode: a
`
	require.NoError(t, fs.WriteFile("template.yaml", []byte(body), 0644))

	root, err := template.Load(fs, "template.yaml")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	src := root.Children[0]
	assert.Equal(t, "src", src.Name)
	assert.True(t, src.IsDir())
	require.Len(t, src.Children, 2)
	assert.Equal(t, "util", src.Children[0].Name)
	assert.Equal(t, "main.go", src.Children[1].Name)
	assert.Equal(t, "package main\n", src.Children[1].Content)

	notes := root.Children[1]
	assert.Equal(t, "notes.txt", notes.Name)
	assert.Equal(t, template.ModeAppend, notes.Mode)
	assert.Equal(t, "remember", notes.Content)
}

func TestLoad_TOML(t *testing.T) {
	fs := testutil.NewMemoryFS()
	body := `
["config.toml"]
content = "key = 1"

[src]
"main.go" = "package main"
`
	require.NoError(t, fs.WriteFile("template.toml", []byte(body), 0644))

	root, err := template.Load(fs, "template.toml")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	assert.Equal(t, "src", root.Children[0].Name)
	assert.True(t, root.Children[0].IsDir())
	assert.Equal(t, "config.toml", root.Children[1].Name)
	assert.Equal(t, "key = 1", root.Children[1].Content)
}

func TestLoad_MissingFile(t *testing.T) {
	fs := testutil.NewMemoryFS()

	_, err := template.Load(fs, "nope.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrFileAccess, errors.GetErrorCode(err))
}

func TestLoad_BadYAML(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("template.yaml", []byte("a:\n - b\n x: unindented"), 0644))

	_, err := template.Load(fs, "template.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrTemplateParse, errors.GetErrorCode(err))
}

func TestLoad_NonMappingRoot(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"list root", "- a\n- b\n"},
		{"scalar root", "just a string\n"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := testutil.NewMemoryFS()
			require.NoError(t, fs.WriteFile("template.yaml", []byte(tt.body), 0644))

			_, err := template.Load(fs, "template.yaml")
			require.Error(t, err)
			assert.Equal(t, errors.ErrTemplateInvalid, errors.GetErrorCode(err))
		})
	}
}

func TestLoad_BadTOML(t *testing.T) {
	fs := testutil.NewMemoryFS()
	require.NoError(t, fs.WriteFile("template.toml", []byte("= broken"), 0644))

	_, err := template.Load(fs, "template.toml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrTemplateParse, errors.GetErrorCode(err))
}
