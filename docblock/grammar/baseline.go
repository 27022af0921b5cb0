package grammar

import (
	"strings"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
)

// Baseline parses reserved tags into their typed values and captures the
// payload of any other tag verbatim.
func Baseline(ctx Context, cur *lexer.Cursor) (docblock.TagValue, error) {
	switch reservedBase(ctx.Tag) {
	case "param":
		return parseParam(cur), nil
	case "var":
		typ := readType(cur)
		variable := readVariable(cur)
		return docblock.VarValue{Type: typ, Variable: variable, Description: CaptureText(cur)}, nil
	case "return":
		return docblock.ReturnValue{Type: readType(cur), Description: CaptureText(cur)}, nil
	case "throws":
		return docblock.ThrowsValue{Type: readType(cur), Description: CaptureText(cur)}, nil
	case "property":
		typ := readType(cur)
		property := readVariable(cur)
		return docblock.PropertyValue{Type: typ, Property: property, Description: CaptureText(cur)}, nil
	case "deprecated":
		return docblock.DeprecatedValue{Description: CaptureText(cur)}, nil
	}
	return docblock.GenericValue{Value: CaptureText(cur)}, nil
}

func parseParam(cur *lexer.Cursor) docblock.ParamValue {
	var v docblock.ParamValue
	v.Type = readType(cur)
	if cur.IsCurrentPunct("&") {
		if next := cur.Peek(1); next.Kind == lexer.Variable || next.IsPunct("...") {
			v.ByRef = true
			cur.Next()
		}
	}
	if cur.IsCurrentPunct("...") && cur.Peek(1).Kind == lexer.Variable {
		v.Variadic = true
		cur.Next()
	}
	v.Variable = readVariable(cur)
	v.Description = CaptureText(cur)
	return v
}

func readVariable(cur *lexer.Cursor) string {
	if !cur.IsCurrent(lexer.Variable) {
		return ""
	}
	name := cur.CurrentValue()
	cur.Next()
	return name
}

// CaptureText reads free text up to the end of the current paragraph:
// a blank line, a line that starts with a tag, the closing marker or the
// end of input. Runs of horizontal whitespace become one space and line
// breaks become "\n". The cursor is left on the terminating token.
func CaptureText(cur *lexer.Cursor) string {
	var lines []string
	var line strings.Builder
	started := false

	for {
		switch cur.CurrentKind() {
		case lexer.EOF, lexer.Close:
			return finishText(lines, line.String(), started)
		case lexer.EOL:
			if !started {
				return ""
			}
			switch cur.Peek(1).Kind {
			case lexer.Tag, lexer.EOL, lexer.Close, lexer.EOF:
				return finishText(lines, line.String(), started)
			}
			lines = append(lines, line.String())
			line.Reset()
			cur.Next()
		default:
			if cur.SpaceBefore() && line.Len() > 0 {
				line.WriteByte(' ')
			}
			line.WriteString(cur.CurrentValue())
			started = true
			cur.Next()
		}
	}
}

func finishText(lines []string, last string, started bool) string {
	if !started {
		return ""
	}
	return strings.Join(append(lines, last), "\n")
}

// readType reads a type expression such as "?Foo", "int[]",
// "array<string, int>" or "Foo|Bar". Whitespace ends the expression
// unless it is inside brackets or next to a union or intersection
// operator.
func readType(cur *lexer.Cursor) string {
	if !startsType(cur) {
		return ""
	}

	var sb strings.Builder
	depth := 0
	prev := lexer.Token{}
	for {
		tok := cur.Current()
		switch tok.Kind {
		case lexer.EOF, lexer.Close, lexer.EOL, lexer.Tag:
			return sb.String()
		case lexer.Variable:
			if sb.Len() > 0 {
				return sb.String()
			}
		}
		if depth == 0 && sb.Len() > 0 {
			if cur.SpaceBefore() && !joinsType(prev, tok) {
				return sb.String()
			}
			if tok.IsPunct(",") || tok.IsPunct("=") {
				return sb.String()
			}
			next := cur.Peek(1)
			if tok.IsPunct("&") && (next.Kind == lexer.Variable || next.IsPunct("...")) {
				return sb.String()
			}
			if tok.IsPunct("...") && next.Kind == lexer.Variable {
				return sb.String()
			}
		}
		if tok.Kind == lexer.Punct {
			switch tok.Value {
			case "(", "[", "{", "<":
				depth++
			case ")", "]", "}", ">":
				if depth == 0 {
					return sb.String()
				}
				depth--
			}
		}
		if cur.SpaceBefore() && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Value)
		prev = tok
		cur.Next()
	}
}

func startsType(cur *lexer.Cursor) bool {
	tok := cur.Current()
	switch tok.Kind {
	case lexer.Identifier, lexer.String:
		return true
	case lexer.Variable:
		return tok.Value == "$this"
	case lexer.Punct:
		return tok.Value == "?" || tok.Value == "("
	}
	return false
}

func joinsType(prev, next lexer.Token) bool {
	for _, op := range []string{"|", "&", ":"} {
		if prev.IsPunct(op) {
			return true
		}
	}
	return next.IsPunct("|") || next.IsPunct("&")
}
