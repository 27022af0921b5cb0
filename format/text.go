package format

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/dhamidi/docfront/docblock"
)

// TextEncoder writes a human readable listing of a block: free text
// wrapped to the configured width, then one line per tag with the tag
// names in an aligned column.
type TextEncoder struct {
	w     io.Writer
	width int
}

// NewTextEncoder returns an encoder wrapping at width columns. A width of
// zero or less disables wrapping.
func NewTextEncoder(w io.Writer, width int) *TextEncoder {
	return &TextEncoder{w: w, width: width}
}

func (e *TextEncoder) Encode(block *docblock.Block) error {
	text, err := e.MarshalText(block)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText(block *docblock.Block) ([]byte, error) {
	var sb strings.Builder

	column := 0
	for _, tag := range block.Tags() {
		if w := runewidth.StringWidth(tag.Name); w > column {
			column = w
		}
	}

	for _, child := range block.Children {
		switch n := child.(type) {
		case *docblock.Text:
			sb.WriteString(e.wrap(n.Content, 0))
		case *docblock.Tag:
			sb.WriteString(runewidth.FillRight(n.Name, column))
			if n.Value != nil {
				if value := n.Value.String(); value != "" {
					sb.WriteString(" ")
					sb.WriteString(e.wrap(value, column+1))
				}
			}
		}
		sb.WriteString("\n")
	}
	return []byte(sb.String()), nil
}

// wrap wraps text to the encoder width less offset and indents every
// continuation line by offset columns.
func (e *TextEncoder) wrap(text string, offset int) string {
	if e.width > 0 {
		limit := e.width - offset
		if limit < 20 {
			limit = 20
		}
		text = wordwrap.String(text, limit)
	}
	if offset == 0 || !strings.Contains(text, "\n") {
		return text
	}
	first, rest, _ := strings.Cut(text, "\n")
	return first + "\n" + indent.String(rest, uint(offset))
}
