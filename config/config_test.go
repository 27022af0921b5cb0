package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/grammar"
	"github.com/dhamidi/docfront/docblock/lexer"
	"github.com/dhamidi/docfront/syntax"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var wantGrammars = []GrammarConfig{
	{Name: `ORM\Column`, Grammar: "annotation"},
	{Hosts: []syntax.Kind{syntax.KindClassLike, syntax.KindClassMethod}, Grammar: "annotation"},
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{".docfront.yaml", `
width: 72
grammars:
  - name: "@ORM\\Column"
    grammar: annotation
  - hosts: [class_like, class-method]
`},
		{".docfront.toml", `
width = 72

[[grammars]]
name = 'ORM\Column'
grammar = "annotation"

[[grammars]]
hosts = ["class_like", "class_method"]
grammar = "Annotation"
`},
		{".docfront.json", `{
  "width": 72,
  "grammars": [
    {"name": "ORM\\Column", "grammar": "annotation"},
    {"hosts": "class_like, class_method", "grammar": "annotation"}
  ]
}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.name, tt.content))
			require.NoError(t, err)
			assert.Equal(t, 72, cfg.Width)
			assert.Equal(t, wantGrammars, cfg.Grammars)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(writeConfig(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Empty(t, cfg.Grammars)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"unknown key", "c.yaml", "colour: red\n", "unknown config key: colour"},
		{"unknown grammar key", "c.yaml", "grammars:\n  - name: Foo\n    priority: 1\n", "unknown grammar key: priority"},
		{"unknown grammar", "c.yaml", "grammars:\n  - name: Foo\n    grammar: doctrine\n", `unknown grammar "doctrine"`},
		{"unknown host", "c.yaml", "grammars:\n  - hosts: [module]\n", `unknown host kind "module"`},
		{"name and hosts", "c.yaml", "grammars:\n  - name: Foo\n    hosts: [class]\n", "exactly one of name or hosts"},
		{"neither", "c.yaml", "grammars:\n  - grammar: annotation\n", "exactly one of name or hosts"},
		{"grammars not a list", "c.json", `{"grammars": {"name": "Foo"}}`, "expected list for grammars"},
		{"negative width", "c.toml", "width = -1\n", "width must not be negative"},
		{"bad extension", "c.ini", "width=1\n", "unsupported config extension: .ini"},
		{"malformed", "c.json", "{", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRegistry(t *testing.T) {
	cfg := Config{Grammars: wantGrammars}
	registry, err := cfg.Registry()
	require.NoError(t, err)
	require.Equal(t, 2, registry.Len())

	assert.True(t, registry.Eligible(`@ORM\Column`, nil))
	assert.True(t, registry.Eligible("@Anything", &syntax.Class{}))
	assert.False(t, registry.Eligible("@Anything", &syntax.Function{}))

	cur := lexer.NewCursor(lexer.Lex(`/** @Entity(name="user") */`))
	require.NoError(t, cur.Consume(lexer.Open))
	require.NoError(t, cur.Consume(lexer.Tag))
	value, err := registry.Resolve(grammar.Context{Tag: "@Entity", Host: &syntax.Class{}}, cur)
	require.NoError(t, err)
	assert.IsType(t, docblock.AnnotationValue{}, value)
}

func TestRegistryRejectsInvalidGrammar(t *testing.T) {
	cfg := Config{Grammars: []GrammarConfig{{Name: "Foo", Grammar: "missing"}}}
	_, err := cfg.Registry()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grammars[0]")
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "Entity")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, err := Find(nested, "")
	require.NoError(t, err)
	if path != "" {
		// A configuration above the temporary directory is outside the
		// test's control.
		assert.NotContains(t, path, root)
	}

	want := filepath.Join(root, ".docfront.toml")
	require.NoError(t, os.WriteFile(want, []byte("width = 60\n"), 0o644))
	path, err = Find(nested, "")
	require.NoError(t, err)
	assert.Equal(t, want, path)

	explicit := writeConfig(t, "custom.yaml", "width: 1\n")
	path, err = Find(nested, explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)

	_, err = Find(nested, root)
	assert.Error(t, err)
}
