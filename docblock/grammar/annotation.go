package grammar

import (
	"fmt"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
)

// Annotation returns the grammar for annotation-style tags:
//
//	@ORM\Column(name="id", type="integer", options={"unsigned": true})
//
// The argument list is optional and may span several lines. Whatever
// follows it on the line becomes the description.
func Annotation() ParseFunc {
	return parseAnnotation
}

func parseAnnotation(ctx Context, cur *lexer.Cursor) (docblock.TagValue, error) {
	var v docblock.AnnotationValue
	if cur.TryConsumePunct("(") {
		v.Parens = true
		args, err := parseArguments(cur, ")")
		if err != nil {
			return nil, err
		}
		v.Arguments = args
	}
	v.Description = CaptureText(cur)
	if ctx.Names != nil {
		if name, ok := ctx.Names.GetName(ctx.Host); ok {
			v.Host = name
		}
	}
	return v, nil
}

// ArgumentError reports a malformed annotation argument list.
type ArgumentError struct {
	Expected string
	Got      lexer.Token
}

func (e *ArgumentError) Error() string {
	if e.Got.Kind == lexer.EOF || e.Got.Kind == lexer.Close {
		return fmt.Sprintf("unterminated annotation arguments, expected %s", e.Expected)
	}
	return fmt.Sprintf("unexpected %s %q at offset %d in annotation arguments, expected %s",
		e.Got.Kind, e.Got.Value, e.Got.Offset, e.Expected)
}

func skipLineBreaks(cur *lexer.Cursor) {
	for cur.IsCurrent(lexer.EOL) {
		cur.Next()
	}
}

// parseArguments reads a comma separated argument list up to and including
// closer. A trailing comma is allowed.
func parseArguments(cur *lexer.Cursor, closer string) ([]docblock.Argument, error) {
	var args []docblock.Argument
	skipLineBreaks(cur)
	if cur.TryConsumePunct(closer) {
		return args, nil
	}
	for {
		skipLineBreaks(cur)
		arg, err := parseArgument(cur, closer)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		skipLineBreaks(cur)
		if cur.TryConsumePunct(",") {
			skipLineBreaks(cur)
			if cur.TryConsumePunct(closer) {
				return args, nil
			}
			continue
		}
		if cur.TryConsumePunct(closer) {
			return args, nil
		}
		return nil, &ArgumentError{Expected: fmt.Sprintf("%q or \",\"", closer), Got: cur.Current()}
	}
}

func parseArgument(cur *lexer.Cursor, closer string) (docblock.Argument, error) {
	var key, sep string
	switch cur.CurrentKind() {
	case lexer.Identifier, lexer.String:
		next := cur.Peek(1)
		if next.IsPunct("=") || (next.IsPunct(":") && !cur.Peek(2).IsPunct(":")) {
			key, sep = cur.CurrentValue(), next.Value
			cur.Next()
			cur.Next()
			skipLineBreaks(cur)
		}
	}
	arg, err := parseArgumentValue(cur, closer)
	if err != nil {
		return arg, err
	}
	arg.Key, arg.Separator = key, sep
	return arg, nil
}

func parseArgumentValue(cur *lexer.Cursor, closer string) (docblock.Argument, error) {
	tok := cur.Current()
	switch {
	case tok.IsPunct("{"):
		cur.Next()
		items, err := parseArguments(cur, "}")
		if err != nil {
			return docblock.Argument{}, err
		}
		return docblock.Argument{Kind: docblock.ArgumentList, Items: items}, nil

	case tok.Kind == lexer.Tag:
		name := tok.Value
		cur.Next()
		if cur.IsCurrent(lexer.Identifier) && !cur.SpaceBefore() {
			name += cur.CurrentValue()
			cur.Next()
		}
		if !cur.TryConsumePunct("(") {
			return docblock.Argument{Kind: docblock.ArgumentScalar, Scalar: name}, nil
		}
		items, err := parseArguments(cur, ")")
		if err != nil {
			return docblock.Argument{}, err
		}
		return docblock.Argument{Kind: docblock.ArgumentAnnotation, Name: name, Items: items}, nil

	case tok.Kind == lexer.String, tok.Kind == lexer.Identifier, tok.Kind == lexer.Variable, tok.Kind == lexer.Other:
		scalar := tok.Value
		cur.Next()
		for !cur.SpaceBefore() && continuesScalar(cur.Current(), closer) {
			scalar += cur.CurrentValue()
			cur.Next()
		}
		return docblock.Argument{Kind: docblock.ArgumentScalar, Scalar: scalar}, nil
	}
	return docblock.Argument{}, &ArgumentError{Expected: "an argument", Got: tok}
}

// continuesScalar reports whether tok, written directly after a scalar,
// belongs to it, as in "Foo::BAR" or "1.5".
func continuesScalar(tok lexer.Token, closer string) bool {
	switch tok.Kind {
	case lexer.Identifier, lexer.Other, lexer.Variable:
		return true
	case lexer.Punct:
		switch tok.Value {
		case ",", "=", "{", "}", closer:
			return false
		}
		return tok.Value == ":" || tok.Value == "." || tok.Value == "[" || tok.Value == "]"
	}
	return false
}
