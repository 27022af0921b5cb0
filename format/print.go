package format

import (
	"strings"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
)

const defaultLineBreak = "\n * "

// PrintBlock renders b as a doc comment. Separators and unmodified
// children are copied from the block's tokens, so an untouched block
// prints exactly as it was read. Edited children print their current
// rendering and children without a span are printed on a line of their
// own.
func PrintBlock(b *docblock.Block) string {
	if len(b.Tokens) == 0 {
		return printSynthesized(b)
	}

	var sb strings.Builder
	tokens := b.Tokens
	lineBreak := lineBreakOf(tokens)
	pos := 0

	for _, child := range b.Children {
		span := child.Attrs().Span
		if span.End == 0 {
			if pos == 0 {
				writeTokens(&sb, tokens, 0, 1)
				pos = 1
			}
			sb.WriteString(lineBreak)
			sb.WriteString(render(child, lineBreak))
			continue
		}

		writeTokens(&sb, tokens, pos, span.Start)
		if docblock.IsModified(child) {
			sb.WriteString(render(child, lineBreak))
		} else {
			writeTokens(&sb, tokens, span.Start, span.End)
		}
		pos = span.End
	}
	writeTokens(&sb, tokens, pos, len(tokens))
	return sb.String()
}

func render(n docblock.Node, lineBreak string) string {
	return strings.ReplaceAll(n.String(), "\n", lineBreak)
}

func printSynthesized(b *docblock.Block) string {
	var sb strings.Builder
	if b.Comment {
		for i, child := range b.Children {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("// ")
			sb.WriteString(strings.ReplaceAll(child.String(), "\n", "\n// "))
		}
		return sb.String()
	}
	sb.WriteString("/**")
	for _, child := range b.Children {
		sb.WriteString(defaultLineBreak)
		sb.WriteString(render(child, defaultLineBreak))
	}
	sb.WriteString("\n */")
	return sb.String()
}

// lineBreakOf returns the separator the block uses between lines: the
// first line break not followed by the closing marker, together with the
// whitespace after it.
func lineBreakOf(tokens []lexer.Token) string {
	for i, tok := range tokens {
		if tok.Kind != lexer.EOL || i+1 >= len(tokens) {
			continue
		}
		next := tokens[i+1]
		if next.Kind == lexer.Close || next.Kind == lexer.EOF {
			continue
		}
		if next.Kind == lexer.WS {
			return tok.Value + next.Value
		}
		return tok.Value + " "
	}
	return defaultLineBreak
}

func writeTokens(sb *strings.Builder, tokens []lexer.Token, from, to int) {
	if to > len(tokens) {
		to = len(tokens)
	}
	for i := from; i < to; i++ {
		sb.WriteString(tokens[i].Value)
	}
}
