package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
)

const wrapped = "/**\n * This   is  a\n *    wrapped   line\n */"

func TestOriginalContent(t *testing.T) {
	assert.Equal(t, "This   is  a\n    wrapped   line", OriginalContent(lexer.Lex(wrapped)))
	assert.Equal(t, "", OriginalContent(lexer.Lex("/** */")))
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		text    string
		want    string
		wantOK  bool
	}{
		{"exact", "a b c", "a b c", "a b c", true},
		{"re-spaced", "a   b\n  c", "a b c", "a   b\n  c", true},
		{"first match wins", "x y and x   y", "x y", "x y", true},
		{"metacharacters", "cost $1.5 (net)", "$1.5 (net)", "$1.5 (net)", true},
		{"missing whitespace", "ab", "a b", "", false},
		{"absent", "a b", "c d", "", false},
		{"empty text", "a b", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Reconcile(tt.content, tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAttachesOriginalText(t *testing.T) {
	block, err := New(nil).ParseString(wrapped, nil)
	require.NoError(t, err)
	require.Len(t, block.Children, 1)

	text := block.Children[0].(*docblock.Text)
	assert.Equal(t, "This is a\nwrapped line", text.Content)
	assert.Equal(t, "This   is  a\n    wrapped   line", text.OriginalText)
	assert.Equal(t, docblock.Span{Start: 3, End: 13}, text.Span)
}

func TestParseOriginalTextForTags(t *testing.T) {
	block, err := New(nil).ParseString("/** @param  int   $x */", nil)
	require.NoError(t, err)
	tag := block.Tags()[0]
	assert.Equal(t, "@param int $x", tag.Synthesized)
	assert.Equal(t, "@param  int   $x", tag.OriginalText)
}

func TestParseOriginalTextMiss(t *testing.T) {
	block, err := New(ormRegistry()).ParseString(`/** @ORM\Column(options={"unsigned":true}) */`, nil)
	require.NoError(t, err)
	tag := block.Tags()[0]
	assert.Equal(t, `@ORM\Column(options={"unsigned": true})`, tag.Synthesized)
	assert.Empty(t, tag.OriginalText)
}

func TestTextHeuristicOverride(t *testing.T) {
	never := func(string) bool { return false }
	block, err := New(nil, WithTextHeuristic(never)).ParseString(wrapped, nil)
	require.NoError(t, err)
	assert.Empty(t, block.Children[0].Attrs().OriginalText)
}

func TestPossiblyMultiLine(t *testing.T) {
	assert.True(t, PossiblyMultiLine("a b"))
	assert.True(t, PossiblyMultiLine("a\nb"))
	assert.False(t, PossiblyMultiLine("Foo::bar()"))
}
