package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dhamidi/docfront/docblock/lexer"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// OriginalContent rebuilds the comment text without its opening and
// closing markers, with every line break and line prefix replaced by "\n".
func OriginalContent(tokens []lexer.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.Open, lexer.Close, lexer.EOF:
			continue
		case lexer.EOL:
			sb.WriteByte('\n')
		default:
			sb.WriteString(tok.Value)
		}
	}
	return strings.TrimSpace(sb.String())
}

// Pattern matches text literally except that each run of whitespace
// matches any non-empty run of whitespace.
func Pattern(text string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(text)
	return regexp.MustCompile(whitespaceRun.ReplaceAllLiteralString(quoted, `\s+`))
}

// Reconcile finds the first occurrence of text in content, allowing the
// whitespace to differ.
func Reconcile(content, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	match := Pattern(text).FindString(content)
	if match == "" {
		return "", false
	}
	return match, true
}

// PossiblyMultiLine reports whether text could have been wrapped or
// re-spaced by parsing.
func PossiblyMultiLine(text string) bool {
	return strings.IndexFunc(text, unicode.IsSpace) >= 0
}

// originalContent computes the block's original content on first use.
type originalContent struct {
	tokens []lexer.Token
	text   string
	done   bool
}

func (c *originalContent) String() string {
	if !c.done {
		c.text = OriginalContent(c.tokens)
		c.done = true
	}
	return c.text
}
