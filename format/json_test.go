package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/docfront/docblock/parser"
	"github.com/dhamidi/docfront/names"
	"github.com/dhamidi/docfront/syntax"
)

func TestBlockJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewBlockJSONEncoder(&buf).Encode(parseUserDoc(t)))

	var decoded jsonBlock
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.True(t, decoded.Closed)
	assert.False(t, decoded.Comment)
	require.Len(t, decoded.Children, 4)

	summary := decoded.Children[0]
	assert.Equal(t, "text", summary.Kind)
	assert.Equal(t, "Loads a user.", summary.Text)
	assert.Equal(t, "Loads a user.", summary.OriginalText)

	param := decoded.Children[2]
	assert.Equal(t, "tag", param.Kind)
	assert.Equal(t, "@param", param.Name)
	require.NotNil(t, param.Value)
	assert.Equal(t, "param", param.Value.Kind)
	assert.Equal(t, "int", param.Value.Type)
	assert.Equal(t, "$id", param.Value.Variable)
	assert.Equal(t, "int $id the id", param.Value.Rendered)
	assert.Less(t, param.Span.Start, param.Span.End)
}

func TestBlockJSONEncoderAnnotation(t *testing.T) {
	block, err := parser.New(annotationRegistry()).ParseString(`/** @Column(type="string", options={"fixed": true}) */`, nil)
	require.NoError(t, err)

	text, err := NewBlockJSONEncoder(nil).MarshalText(block)
	require.NoError(t, err)

	var decoded jsonBlock
	require.NoError(t, json.Unmarshal(text, &decoded))
	value := decoded.Children[0].Value
	require.NotNil(t, value)
	assert.Equal(t, "annotation", value.Kind)
	require.Len(t, value.Arguments, 2)
	assert.Equal(t, jsonArgument{Key: "type", Kind: "scalar", Value: `"string"`}, value.Arguments[0])
	assert.Equal(t, "list", value.Arguments[1].Kind)
	assert.Equal(t, `"fixed"`, value.Arguments[1].Items[0].Key)
}

func TestBlockJSONEncoderAnnotationHost(t *testing.T) {
	p := parser.New(annotationRegistry(), parser.WithResolver(names.NewResolver()))
	host := &syntax.Property{Props: []*syntax.PropertyItem{{Name: syntax.Ident("email")}}}
	block, err := p.ParseString(`/** @Column(type="string") */`, host)
	require.NoError(t, err)

	text, err := NewBlockJSONEncoder(nil).MarshalText(block)
	require.NoError(t, err)

	var decoded jsonBlock
	require.NoError(t, json.Unmarshal(text, &decoded))
	require.NotNil(t, decoded.Children[0].Value)
	assert.Equal(t, "email", decoded.Children[0].Value.Host)
}
