// Package parser turns a doc comment token stream into a docblock.Block.
//
// Every child records the span of tokens it was built from. Children whose
// text may have been re-spaced by parsing also get the matching slice of
// the original comment attached, so printers can reproduce it.
package parser

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/grammar"
	"github.com/dhamidi/docfront/docblock/lexer"
	"github.com/dhamidi/docfront/names"
	"github.com/dhamidi/docfront/syntax"
)

var log = commonlog.GetLogger("docfront.parser")

type Option func(*Parser)

// WithResolver hands r to grammars through grammar.Context.
func WithResolver(r *names.Resolver) Option {
	return func(p *Parser) {
		p.names = r
	}
}

// WithTextHeuristic replaces the test that decides whether a child's
// original text is worth recovering.
func WithTextHeuristic(possiblyMultiLine func(text string) bool) Option {
	return func(p *Parser) {
		p.possiblyMultiLine = possiblyMultiLine
	}
}

// Parser is safe for concurrent use once constructed.
type Parser struct {
	registry          *grammar.Registry
	names             *names.Resolver
	possiblyMultiLine func(string) bool
}

// New returns a parser dispatching tag payloads through registry. A nil
// registry parses every tag with the baseline grammar.
func New(registry *grammar.Registry, opts ...Option) *Parser {
	p := &Parser{
		registry:          registry,
		possiblyMultiLine: PossiblyMultiLine,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseError locates a failure in the token buffer.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("doc block: token %d: %s", e.Index, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (p *Parser) ParseString(text string, host syntax.Node) (*docblock.Block, error) {
	return p.Parse(lexer.Lex(text), host)
}

// Parse builds a block from tokens. host is the declaration the comment is
// attached to and may be nil. A missing closing marker is not an error.
func (p *Parser) Parse(tokens []lexer.Token, host syntax.Node) (*docblock.Block, error) {
	cur := lexer.NewCursor(tokens)
	block := &docblock.Block{Tokens: cur.Snapshot()}

	if !cur.TryConsume(lexer.Open) {
		if err := cur.Consume(lexer.Other); err != nil {
			return nil, &ParseError{Index: cur.Index(), Err: err}
		}
		block.Comment = true
	}

	cur.TryConsume(lexer.EOL)

	content := &originalContent{tokens: block.Tokens}
	if !atEnd(cur) {
		for {
			child, err := p.parseChild(cur, host, content)
			if err != nil {
				return nil, err
			}
			block.Children = append(block.Children, child)
			if !cur.TryConsume(lexer.EOL) || atEnd(cur) {
				break
			}
		}
	}

	if !block.Comment {
		block.Closed = cur.TryConsume(lexer.Close)
	}
	log.Debugf("parsed block with %d children (closed=%t)", len(block.Children), block.Closed)
	return block, nil
}

func atEnd(cur *lexer.Cursor) bool {
	return cur.IsCurrent(lexer.Close) || cur.IsCurrent(lexer.EOF)
}

func (p *Parser) parseChild(cur *lexer.Cursor, host syntax.Node, content *originalContent) (docblock.Node, error) {
	start := cur.Index()

	var node docblock.Node
	if cur.IsCurrent(lexer.Tag) {
		tag, err := p.parseTag(cur, host)
		if err != nil {
			return nil, &ParseError{Index: start, Err: err}
		}
		node = tag
	} else {
		node = &docblock.Text{Content: grammar.CaptureText(cur)}
	}

	attrs := node.Attrs()
	attrs.Span = docblock.Span{Start: start, End: cur.Index()}
	attrs.Synthesized = node.String()
	if attrs.Synthesized != "" && p.possiblyMultiLine(attrs.Synthesized) {
		if original, ok := Reconcile(content.String(), attrs.Synthesized); ok {
			attrs.OriginalText = original
		}
	}
	return node, nil
}

func (p *Parser) parseTag(cur *lexer.Cursor, host syntax.Node) (*docblock.Tag, error) {
	name := cur.CurrentValue()
	if err := cur.Consume(lexer.Tag); err != nil {
		return nil, err
	}

	if !grammar.IsReserved(name) && cur.IsCurrent(lexer.Identifier) && !cur.SpaceBefore() {
		if joined := name + cur.CurrentValue(); p.registry.Eligible(joined, host) {
			name = joined
			cur.Next()
		}
	}

	value, err := p.ParseTagValue(cur, name, host)
	if err != nil {
		return nil, err
	}
	return &docblock.Tag{Name: name, Value: value}, nil
}

// ParseTagValue parses the payload of tag with cur positioned just after
// the tag name.
func (p *Parser) ParseTagValue(cur *lexer.Cursor, tag string, host syntax.Node) (docblock.TagValue, error) {
	ctx := grammar.Context{Tag: tag, Host: host, Names: p.names}
	return p.registry.Resolve(ctx, cur)
}
