package lsp

import (
	"fmt"
	"strings"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/syntax"
)

// Hover describes the doc comment tag at byte offset in text.
func (ls *Server) Hover(text string, offset int) (string, bool) {
	start, end, ok := enclosingComment(text, offset)
	if !ok {
		return "", false
	}

	host := guessHost(text[end:])
	block, err := ls.parser.ParseString(text[start:end], host)
	if err != nil {
		log.Debugf("hover at %d: %s", offset, err)
		return "", false
	}

	tag := tagAt(block, offset-start)
	if tag == nil {
		return "", false
	}
	return ls.describe(tag, host), true
}

func (ls *Server) describe(tag *docblock.Tag, host syntax.Node) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s**", tag.Name)
	if host != nil && ls.names != nil {
		if name, ok := ls.names.GetName(host); ok {
			fmt.Fprintf(&sb, " on %s `%s`", syntax.KindOf(host), name)
		}
	}
	sb.WriteString("\n\n")

	for _, field := range valueFields(tag.Value) {
		if field[1] != "" {
			fmt.Fprintf(&sb, "- %s: `%s`\n", field[0], field[1])
		}
	}
	if tag.OriginalText != "" && tag.OriginalText != tag.Synthesized {
		fmt.Fprintf(&sb, "\n```\n%s\n```\n", tag.OriginalText)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func valueFields(v docblock.TagValue) [][2]string {
	switch v := v.(type) {
	case docblock.ParamValue:
		variable := v.Variable
		if v.Variadic {
			variable = "..." + variable
		}
		if v.ByRef {
			variable = "&" + variable
		}
		return [][2]string{{"type", v.Type}, {"variable", variable}, {"description", v.Description}}
	case docblock.VarValue:
		return [][2]string{{"type", v.Type}, {"variable", v.Variable}, {"description", v.Description}}
	case docblock.ReturnValue:
		return [][2]string{{"type", v.Type}, {"description", v.Description}}
	case docblock.ThrowsValue:
		return [][2]string{{"type", v.Type}, {"description", v.Description}}
	case docblock.PropertyValue:
		return [][2]string{{"type", v.Type}, {"property", v.Property}, {"description", v.Description}}
	case docblock.DeprecatedValue:
		return [][2]string{{"description", v.Description}}
	case docblock.AnnotationValue:
		fields := make([][2]string, 0, len(v.Arguments)+1)
		for i, arg := range v.Arguments {
			key := arg.Key
			if key == "" {
				key = fmt.Sprintf("#%d", i)
			}
			value := arg.String()
			if arg.Key != "" {
				value = value[len(arg.Key)+len(arg.Separator):]
				value = strings.TrimSpace(value)
			}
			fields = append(fields, [2]string{key, value})
		}
		return append(fields, [2]string{"description", v.Description})
	case docblock.GenericValue:
		return [][2]string{{"value", v.Value}}
	}
	return nil
}

// tagAt returns the tag whose tokens cover offset, relative to the start
// of the comment.
func tagAt(block *docblock.Block, offset int) *docblock.Tag {
	for _, tag := range block.Tags() {
		span := tag.Span
		if span.Start >= span.End || span.End > len(block.Tokens) {
			continue
		}
		from := block.Tokens[span.Start].Offset
		to := block.Tokens[span.End-1].End()
		if offset >= from && offset < to {
			return tag
		}
	}
	return nil
}

// enclosingComment returns the byte range of the doc comment containing
// offset. A comment without a closing marker extends to the end of text.
func enclosingComment(text string, offset int) (int, int, bool) {
	if offset < 0 || offset > len(text) {
		return 0, 0, false
	}
	start := strings.LastIndex(text[:offset], "/**")
	if start < 0 {
		if strings.HasPrefix(text[offset:], "/**") {
			start = offset
		} else {
			return 0, 0, false
		}
	}
	end := len(text)
	if i := strings.Index(text[start+3:], "*/"); i >= 0 {
		end = start + 3 + i + 2
	}
	if offset >= end {
		return 0, 0, false
	}
	return start, end, true
}

// offsetAt converts a zero-based line and byte column to an offset in
// text, or -1 when the position is outside of it.
func offsetAt(text string, line, col int) int {
	offset := 0
	for i := 0; i < line; i++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return -1
		}
		offset += nl + 1
	}
	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text) - offset
	}
	if col > lineEnd {
		return -1
	}
	return offset + col
}

var modifiers = map[string]bool{
	"abstract":  true,
	"final":     true,
	"readonly":  true,
	"static":    true,
	"public":    true,
	"protected": true,
	"private":   true,
	"var":       true,
}

// guessHost recognizes the declaration that follows a doc comment from
// its first line. It returns nil when the line is not a declaration.
func guessHost(rest string) syntax.Node {
	rest = strings.TrimLeft(rest, " \t\r\n")
	if i := strings.IndexAny(rest, "\n({=;"); i >= 0 {
		rest = rest[:i]
	}
	fields := strings.Fields(rest)

	member := false
	for len(fields) > 0 && modifiers[strings.ToLower(fields[0])] {
		member = true
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil
	}

	keyword := strings.ToLower(fields[0])
	name := ""
	if len(fields) > 1 {
		name = fields[1]
	}
	switch keyword {
	case "class":
		if name == "" {
			return &syntax.Class{}
		}
		return &syntax.Class{Name: syntax.Ident(name)}
	case "interface":
		return &syntax.Interface{Name: syntax.Ident(name)}
	case "trait":
		return &syntax.Trait{Name: syntax.Ident(name)}
	case "enum":
		return &syntax.Enum{Name: syntax.Ident(strings.TrimSuffix(name, ":"))}
	case "function":
		name = strings.TrimPrefix(name, "&")
		if member {
			return &syntax.ClassMethod{Name: syntax.Ident(name)}
		}
		return &syntax.Function{Name: syntax.Ident(name)}
	case "const":
		if len(fields) > 2 {
			// typed constant
			name = fields[2]
		}
		return &syntax.ClassConst{Consts: []*syntax.Const{{Name: syntax.Ident(name)}}}
	}

	if member {
		for _, field := range fields {
			if strings.HasPrefix(field, "$") {
				return &syntax.Property{Props: []*syntax.PropertyItem{{Name: syntax.Ident(strings.TrimPrefix(field, "$"))}}}
			}
		}
	}
	return nil
}
