// Package docblock defines the tree produced by parsing a documentation
// comment: free text and tags, each carrying its token span and, when it
// could be recovered, the original text it was parsed from.
package docblock

import (
	"strings"

	"github.com/dhamidi/docfront/docblock/lexer"
)

// Span is a half-open range of token indices.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// Attributes are attached to every node during parsing.
type Attributes struct {
	Span Span
	// OriginalText is the source text of the node with its original
	// spacing, when it could be recovered.
	OriginalText string
	// Synthesized is the node's rendering at parse time.
	Synthesized string
}

func (a *Attributes) Attrs() *Attributes { return a }

// Node is a child of a Block: *Text or *Tag.
type Node interface {
	Attrs() *Attributes
	String() string
	node()
}

// Text is a run of free text.
type Text struct {
	Attributes
	Content string
}

func (*Text) node() {}

func (t *Text) String() string { return t.Content }

// Tag is an "@name" marker followed by its parsed payload.
type Tag struct {
	Attributes
	Name  string
	Value TagValue
}

func (*Tag) node() {}

func (t *Tag) String() string {
	if t.Value == nil {
		return t.Name
	}
	value := t.Value.String()
	if value == "" {
		return t.Name
	}
	if strings.HasPrefix(value, "(") {
		return t.Name + value
	}
	return t.Name + " " + value
}

// IsModified reports whether n renders differently than it did when it
// was parsed.
func IsModified(n Node) bool {
	return n.String() != n.Attrs().Synthesized
}

// Block is a parsed documentation comment.
type Block struct {
	Children []Node
	// Comment is set for informal comments ("//", "#") that have no
	// opening or closing marker.
	Comment bool
	// Closed is set when the closing marker was present.
	Closed bool
	// Tokens is the token buffer the block was parsed from.
	Tokens []lexer.Token
}

func (b *Block) Tags() []*Tag {
	var tags []*Tag
	for _, child := range b.Children {
		if tag, ok := child.(*Tag); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

// TagsByName returns the tags named name, compared case-insensitively and
// with or without the leading "@".
func (b *Block) TagsByName(name string) []*Tag {
	name = strings.TrimPrefix(name, "@")
	var tags []*Tag
	for _, tag := range b.Tags() {
		if strings.EqualFold(strings.TrimPrefix(tag.Name, "@"), name) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Text returns the concatenated free text of the block, one line per
// text node, with empty lines dropped.
func (b *Block) Text() string {
	var lines []string
	for _, child := range b.Children {
		if text, ok := child.(*Text); ok && text.Content != "" {
			lines = append(lines, text.Content)
		}
	}
	return strings.Join(lines, "\n")
}
