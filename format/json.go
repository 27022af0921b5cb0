package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/docfront/docblock"
)

type BlockJSONEncoder struct {
	w io.Writer
}

func NewBlockJSONEncoder(w io.Writer) *BlockJSONEncoder {
	return &BlockJSONEncoder{w: w}
}

func (e *BlockJSONEncoder) Encode(block *docblock.Block) error {
	text, err := e.MarshalText(block)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *BlockJSONEncoder) MarshalText(block *docblock.Block) ([]byte, error) {
	return json.MarshalIndent(blockToJSON(block), "", "  ")
}

type jsonBlock struct {
	Comment  bool        `json:"comment,omitempty"`
	Closed   bool        `json:"closed"`
	Children []*jsonNode `json:"children"`
}

type jsonNode struct {
	Kind         string     `json:"kind"`
	Span         jsonSpan   `json:"span"`
	Text         string     `json:"text,omitempty"`
	Name         string     `json:"name,omitempty"`
	Value        *jsonValue `json:"value,omitempty"`
	OriginalText string     `json:"originalText,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonValue struct {
	Kind        string         `json:"kind"`
	Type        string         `json:"type,omitempty"`
	Variable    string         `json:"variable,omitempty"`
	ByRef       bool           `json:"byRef,omitempty"`
	Variadic    bool           `json:"variadic,omitempty"`
	Arguments   []jsonArgument `json:"arguments,omitempty"`
	Description string         `json:"description,omitempty"`
	Host        string         `json:"host,omitempty"`
	Rendered    string         `json:"rendered"`
}

type jsonArgument struct {
	Key   string         `json:"key,omitempty"`
	Kind  string         `json:"kind"`
	Value string         `json:"value,omitempty"`
	Name  string         `json:"name,omitempty"`
	Items []jsonArgument `json:"items,omitempty"`
}

func blockToJSON(b *docblock.Block) *jsonBlock {
	jb := &jsonBlock{
		Comment:  b.Comment,
		Closed:   b.Closed,
		Children: make([]*jsonNode, 0, len(b.Children)),
	}
	for _, child := range b.Children {
		jb.Children = append(jb.Children, nodeToJSON(child))
	}
	return jb
}

func nodeToJSON(n docblock.Node) *jsonNode {
	attrs := n.Attrs()
	jn := &jsonNode{
		Span:         jsonSpan{Start: attrs.Span.Start, End: attrs.Span.End},
		OriginalText: attrs.OriginalText,
	}
	switch n := n.(type) {
	case *docblock.Text:
		jn.Kind = "text"
		jn.Text = n.Content
	case *docblock.Tag:
		jn.Kind = "tag"
		jn.Name = n.Name
		if n.Value != nil {
			jn.Value = valueToJSON(n.Value)
		}
	}
	return jn
}

func valueToJSON(v docblock.TagValue) *jsonValue {
	jv := &jsonValue{Rendered: v.String()}
	switch v := v.(type) {
	case docblock.GenericValue:
		jv.Kind = "generic"
	case docblock.ParamValue:
		jv.Kind = "param"
		jv.Type, jv.Variable, jv.ByRef, jv.Variadic = v.Type, v.Variable, v.ByRef, v.Variadic
		jv.Description = v.Description
	case docblock.VarValue:
		jv.Kind = "var"
		jv.Type, jv.Variable, jv.Description = v.Type, v.Variable, v.Description
	case docblock.ReturnValue:
		jv.Kind = "return"
		jv.Type, jv.Description = v.Type, v.Description
	case docblock.ThrowsValue:
		jv.Kind = "throws"
		jv.Type, jv.Description = v.Type, v.Description
	case docblock.PropertyValue:
		jv.Kind = "property"
		jv.Type, jv.Variable, jv.Description = v.Type, v.Property, v.Description
	case docblock.DeprecatedValue:
		jv.Kind = "deprecated"
		jv.Description = v.Description
	case docblock.AnnotationValue:
		jv.Kind = "annotation"
		jv.Arguments = argumentsToJSON(v.Arguments)
		jv.Description, jv.Host = v.Description, v.Host
	}
	return jv
}

var argumentKinds = map[docblock.ArgumentKind]string{
	docblock.ArgumentScalar:     "scalar",
	docblock.ArgumentList:       "list",
	docblock.ArgumentAnnotation: "annotation",
}

func argumentsToJSON(args []docblock.Argument) []jsonArgument {
	if len(args) == 0 {
		return nil
	}
	out := make([]jsonArgument, len(args))
	for i, arg := range args {
		out[i] = jsonArgument{
			Key:   arg.Key,
			Kind:  argumentKinds[arg.Kind],
			Value: arg.Scalar,
			Name:  arg.Name,
			Items: argumentsToJSON(arg.Items),
		}
	}
	return out
}
