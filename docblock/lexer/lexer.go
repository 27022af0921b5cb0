// Package lexer splits documentation comments into tokens and provides the
// cursor the doc block parser and its grammars read from.
package lexer

import "strings"

type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Lex tokenizes a complete doc comment. The result always ends with an
// EOF token.
func Lex(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(l.input[l.pos:], s)
}

func (l *Lexer) emit(kind Kind, start int) Token {
	return Token{Kind: kind, Value: l.input[start:l.pos], Offset: start}
}

func (l *Lexer) NextToken() Token {
	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Offset: start}
	}

	if start == 0 {
		if tok, ok := l.scanCommentStart(); ok {
			return tok
		}
	}

	ch := l.peek()
	switch {
	case ch == '*' && l.peekN(1) == '/':
		l.pos += 2
		return l.emit(Close, start)
	case ch == '\n' || (ch == '\r' && l.peekN(1) == '\n'):
		return l.scanEOL(start)
	case ch == ' ' || ch == '\t':
		for l.peek() == ' ' || l.peek() == '\t' {
			l.pos++
		}
		return l.emit(WS, start)
	case ch == '@' && isNameStart(l.peekN(1)):
		l.pos++
		for isTagPart(l.peek()) {
			l.pos++
		}
		return l.emit(Tag, start)
	case ch == '$' && isNameStart(l.peekN(1)):
		l.pos++
		for isNamePart(l.peek()) {
			l.pos++
		}
		return l.emit(Variable, start)
	case isNameStart(ch) || (ch == '\\' && isNameStart(l.peekN(1))):
		return l.scanIdentifier(start)
	case ch == '"' || ch == '\'':
		if tok, ok := l.scanString(start); ok {
			return tok
		}
	case l.hasPrefix("..."):
		l.pos += 3
		return l.emit(Punct, start)
	case isPunct(ch):
		l.pos++
		return l.emit(Punct, start)
	}

	l.pos++
	for l.pos < len(l.input) && !l.startsToken() {
		l.pos++
	}
	return l.emit(Other, start)
}

// scanCommentStart recognizes the block opener, or a line/block comment
// opener that makes the rest of the input an informal comment.
func (l *Lexer) scanCommentStart() (Token, bool) {
	switch {
	case l.hasPrefix("/**") && !l.hasPrefix("/**/"):
		l.pos += 3
		return l.emit(Open, 0), true
	case l.hasPrefix("//"), l.hasPrefix("/*"):
		l.pos += 2
		return l.emit(Other, 0), true
	case l.hasPrefix("#"):
		l.pos++
		return l.emit(Other, 0), true
	}
	return Token{}, false
}

// scanEOL consumes a line break together with the indentation and the
// optional leading asterisk of the next line.
func (l *Lexer) scanEOL(start int) Token {
	if l.peek() == '\r' {
		l.pos++
	}
	l.pos++
	for l.peek() == ' ' || l.peek() == '\t' {
		l.pos++
	}
	if l.peek() == '*' && l.peekN(1) != '/' {
		l.pos++
	}
	return l.emit(EOL, start)
}

func (l *Lexer) scanIdentifier(start int) Token {
	for {
		if l.peek() == '\\' {
			if !isNameStart(l.peekN(1)) {
				break
			}
			l.pos++
		}
		if !isNameStart(l.peek()) {
			break
		}
		for isNamePart(l.peek()) || (l.peek() == '-' && isNamePart(l.peekN(1))) {
			l.pos++
		}
	}
	return l.emit(Identifier, start)
}

func (l *Lexer) scanString(start int) (Token, bool) {
	quote := l.peek()
	i := l.pos + 1
	for i < len(l.input) {
		switch l.input[i] {
		case '\\':
			i += 2
			continue
		case '\n', '\r':
			return Token{}, false
		case '*':
			if i+1 < len(l.input) && l.input[i+1] == '/' {
				return Token{}, false
			}
		case quote:
			l.pos = i + 1
			return l.emit(String, start), true
		}
		i++
	}
	return Token{}, false
}

func (l *Lexer) startsToken() bool {
	ch := l.peek()
	switch {
	case ch == '*' && l.peekN(1) == '/':
		return true
	case ch == '\n', ch == '\r', ch == ' ', ch == '\t':
		return true
	case ch == '@' || ch == '$' || ch == '"' || ch == '\'' || ch == '\\':
		return true
	case isNameStart(ch), isPunct(ch):
		return true
	}
	return false
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isNamePart(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func isTagPart(ch byte) bool {
	return isNamePart(ch) || ch == '-' || ch == ':'
}

func isPunct(ch byte) bool {
	return strings.IndexByte("()[]{}<>,=|&?:.", ch) >= 0
}
