package lexer

import "fmt"

// MismatchError is returned by Cursor.Consume when the current token is
// not of the expected kind.
type MismatchError struct {
	Expected Kind
	Got      Token
	Index    int
}

func (e *MismatchError) Error() string {
	if e.Got.Kind == EOF {
		return fmt.Sprintf("unexpected end of input at token %d, expected %s", e.Index, e.Expected)
	}
	return fmt.Sprintf("unexpected %s %q at offset %d, expected %s", e.Got.Kind, e.Got.Value, e.Got.Offset, e.Expected)
}

// Cursor walks a token buffer. Horizontal whitespace is skipped on every
// advance so the current token is always significant. The position only
// moves forward; Peek and Snapshot never change it.
type Cursor struct {
	tokens []Token
	index  int
}

func NewCursor(tokens []Token) *Cursor {
	c := &Cursor{tokens: tokens}
	c.skipWhitespace()
	return c
}

func (c *Cursor) skipWhitespace() {
	for c.index < len(c.tokens) && c.tokens[c.index].Kind == WS {
		c.index++
	}
}

func (c *Cursor) at(i int) Token {
	if i >= len(c.tokens) {
		end := 0
		if len(c.tokens) > 0 {
			end = c.tokens[len(c.tokens)-1].End()
		}
		return Token{Kind: EOF, Offset: end}
	}
	return c.tokens[i]
}

func (c *Cursor) Current() Token {
	return c.at(c.index)
}

func (c *Cursor) CurrentKind() Kind {
	return c.Current().Kind
}

func (c *Cursor) CurrentValue() string {
	return c.Current().Value
}

func (c *Cursor) IsCurrent(kind Kind) bool {
	return c.CurrentKind() == kind
}

func (c *Cursor) IsCurrentPunct(p string) bool {
	return c.Current().IsPunct(p)
}

// Index is the position of the current token in the buffer.
func (c *Cursor) Index() int {
	return c.index
}

// Next advances past the current token. It never moves beyond EOF.
func (c *Cursor) Next() {
	if c.index >= len(c.tokens) || c.tokens[c.index].Kind == EOF {
		return
	}
	c.index++
	c.skipWhitespace()
}

func (c *Cursor) Consume(kind Kind) error {
	if c.CurrentKind() != kind {
		return &MismatchError{Expected: kind, Got: c.Current(), Index: c.index}
	}
	c.Next()
	return nil
}

func (c *Cursor) TryConsume(kind Kind) bool {
	if c.CurrentKind() != kind {
		return false
	}
	c.Next()
	return true
}

func (c *Cursor) TryConsumePunct(p string) bool {
	if !c.IsCurrentPunct(p) {
		return false
	}
	c.Next()
	return true
}

// Peek returns the n-th significant token after the current one without
// moving the cursor. Peek(0) is the current token.
func (c *Cursor) Peek(n int) Token {
	i := c.index
	for ; n > 0; n-- {
		if c.at(i).Kind == EOF {
			return c.at(i)
		}
		i++
		for i < len(c.tokens) && c.tokens[i].Kind == WS {
			i++
		}
	}
	return c.at(i)
}

// SpaceBefore reports whether whitespace separates the current token from
// the previous one.
func (c *Cursor) SpaceBefore() bool {
	return c.index > 0 && c.index <= len(c.tokens) && c.tokens[c.index-1].Kind == WS
}

// Snapshot returns a copy of the whole token buffer.
func (c *Cursor) Snapshot() []Token {
	out := make([]Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

// Raw returns the tokens in [start, end), whitespace included.
func (c *Cursor) Raw(start, end int) []Token {
	if start < 0 {
		start = 0
	}
	if end > len(c.tokens) {
		end = len(c.tokens)
	}
	if start >= end {
		return nil
	}
	out := make([]Token, end-start)
	copy(out, c.tokens[start:end])
	return out
}
