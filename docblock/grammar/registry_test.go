package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
	"github.com/dhamidi/docfront/syntax"
)

// cursorAfterTag lexes src, which must start with "/** @tag", and returns a
// cursor positioned just after the tag name.
func cursorAfterTag(t *testing.T, src string) (*lexer.Cursor, string) {
	t.Helper()
	cur := lexer.NewCursor(lexer.Lex(src))
	require.NoError(t, cur.Consume(lexer.Open))
	tag := cur.CurrentValue()
	require.NoError(t, cur.Consume(lexer.Tag))
	return cur, tag
}

func constant(value string) ParseFunc {
	return func(Context, *lexer.Cursor) (docblock.TagValue, error) {
		return docblock.GenericValue{Value: value}, nil
	}
}

func decline(Context, *lexer.Cursor) (docblock.TagValue, error) {
	return nil, nil
}

func TestMatchRule(t *testing.T) {
	class := &syntax.Class{Name: syntax.Ident("User")}
	method := &syntax.ClassMethod{Name: syntax.Ident("save")}

	tests := []struct {
		name string
		rule MatchRule
		tag  string
		host syntax.Node
		want bool
	}{
		{"name exact", NameMatch("ORM\\Column"), "@ORM\\Column", nil, true},
		{"name case-insensitive", NameMatch("@ORM\\Column"), "@orm\\column", nil, true},
		{"name differs", NameMatch("Column"), "@ORM\\Column", nil, false},
		{"host class-like", HostMatch(syntax.KindClassLike), "@anything", class, true},
		{"host ancestor", HostMatch(syntax.KindDeclaration), "@anything", method, true},
		{"host other kind", HostMatch(syntax.KindClassLike), "@anything", method, false},
		{"host several kinds", HostMatch(syntax.KindProperty, syntax.KindClassMethod), "@x", method, true},
		{"host missing", HostMatch(syntax.KindClassLike), "@anything", nil, false},
		{"zero rule", MatchRule{}, "@anything", class, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.tag, tt.host))
		})
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"@var", true},
		{"var", true},
		{"@param", true},
		{"@param-out", true},
		{"@return", true},
		{"@throws", true},
		{"@property-read", true},
		{"@deprecated", true},
		{"@Var", false},
		{"@see", false},
		{"@ORM\\Column", false},
		{"@psalm-param", false},
		{"@variant", false},
		{"@variable", false},
		{"@returns", false},
		{"@throwsAway", false},
		{"@deprecatedSince", false},
		{"@params", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReserved(tt.tag))
		})
	}
}

func TestResolveRegistrationOrder(t *testing.T) {
	registry := NewRegistry(
		Entry{Name: "declines", Rule: NameMatch("Column"), Parse: decline},
		Entry{Name: "first", Rule: NameMatch("Column"), Parse: constant("first")},
		Entry{Name: "second", Rule: NameMatch("Column"), Parse: constant("second")},
	)
	cur, tag := cursorAfterTag(t, "/** @Column */")

	value, err := registry.Resolve(Context{Tag: tag}, cur)
	require.NoError(t, err)
	assert.Equal(t, docblock.GenericValue{Value: "first"}, value)
}

func TestResolveRegistrationOrderAcrossRuleKinds(t *testing.T) {
	byName := Entry{Name: "by-name", Rule: NameMatch("foo"), Parse: constant("name")}
	byHost := Entry{Name: "by-host", Rule: HostMatch(syntax.KindClass), Parse: constant("host")}
	host := &syntax.Class{Name: syntax.Ident("User")}

	tests := []struct {
		name    string
		entries []Entry
		want    string
	}{
		{"name registered first", []Entry{byName, byHost}, "name"},
		{"host registered first", []Entry{byHost, byName}, "host"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur, tag := cursorAfterTag(t, "/** @foo */")
			value, err := NewRegistry(tt.entries...).Resolve(Context{Tag: tag, Host: host}, cur)
			require.NoError(t, err)
			assert.Equal(t, docblock.GenericValue{Value: tt.want}, value)
		})
	}
}

func TestResolveReservedBypassesDispatch(t *testing.T) {
	tests := []struct {
		src  string
		want docblock.TagValue
	}{
		{"/** @var int $count */", docblock.VarValue{Type: "int", Variable: "$count"}},
		{"/** @param int $id */", docblock.ParamValue{Type: "int", Variable: "$id"}},
		{"/** @return int */", docblock.ReturnValue{Type: "int"}},
		{"/** @throws Error */", docblock.ThrowsValue{Type: "Error"}},
		{"/** @property int $id */", docblock.PropertyValue{Type: "int", Property: "$id"}},
		{"/** @deprecated soon */", docblock.DeprecatedValue{Description: "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			cur, tag := cursorAfterTag(t, tt.src)
			custom := NewRegistry(
				Entry{Name: "custom", Rule: NameMatch(tag), Parse: constant("custom")},
				Entry{Name: "any", Rule: HostMatch(syntax.KindNode), Parse: constant("custom")},
			)
			value, err := custom.Resolve(Context{Tag: tag, Host: &syntax.Class{}}, cur)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestResolveReservedPrefixStillDispatches(t *testing.T) {
	registry := NewRegistry(Entry{Name: "custom", Rule: NameMatch("variant"), Parse: constant("custom")})
	cur, tag := cursorAfterTag(t, "/** @variant blue */")

	value, err := registry.Resolve(Context{Tag: tag}, cur)
	require.NoError(t, err)
	assert.Equal(t, docblock.GenericValue{Value: "custom"}, value)
}

func TestResolveHostMatch(t *testing.T) {
	registry := NewRegistry(Entry{Name: "entity", Rule: HostMatch(syntax.KindClassLike), Parse: constant("host")})

	cur, tag := cursorAfterTag(t, "/** @Entity */")
	value, err := registry.Resolve(Context{Tag: tag, Host: &syntax.Class{}}, cur)
	require.NoError(t, err)
	assert.Equal(t, docblock.GenericValue{Value: "host"}, value)

	cur, tag = cursorAfterTag(t, "/** @Entity managed */")
	value, err = registry.Resolve(Context{Tag: tag, Host: &syntax.Function{}}, cur)
	require.NoError(t, err)
	assert.Equal(t, docblock.GenericValue{Value: "managed"}, value)
}

func TestResolveFallsBackToBaseline(t *testing.T) {
	var registry *Registry
	cur, tag := cursorAfterTag(t, "/** @see Foo::bar() */")

	value, err := registry.Resolve(Context{Tag: tag}, cur)
	require.NoError(t, err)
	assert.Equal(t, docblock.GenericValue{Value: "Foo::bar()"}, value)
	assert.Equal(t, lexer.Close, cur.CurrentKind())
}

func TestResolveDeclineAfterConsuming(t *testing.T) {
	greedy := func(_ Context, cur *lexer.Cursor) (docblock.TagValue, error) {
		cur.Next()
		return nil, nil
	}
	registry := NewRegistry(Entry{Name: "greedy", Rule: NameMatch("Column"), Parse: greedy})
	cur, tag := cursorAfterTag(t, "/** @Column name */")

	_, err := registry.Resolve(Context{Tag: tag}, cur)
	var declined *DeclineError
	require.ErrorAs(t, err, &declined)
	assert.Equal(t, "greedy", declined.Grammar)
	assert.Equal(t, "@Column", declined.Tag)
}

func TestResolveWrapsGrammarErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(Context, *lexer.Cursor) (docblock.TagValue, error) {
		return nil, boom
	}
	registry := NewRegistry(Entry{Name: "failing", Rule: NameMatch("Column"), Parse: failing})
	cur, tag := cursorAfterTag(t, "/** @Column */")

	_, err := registry.Resolve(Context{Tag: tag}, cur)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
}

func TestRegistryIsFrozen(t *testing.T) {
	entries := []Entry{{Name: "a", Rule: NameMatch("A"), Parse: decline}}
	registry := NewRegistry(entries...)
	entries[0].Rule = NameMatch("B")

	assert.True(t, registry.Eligible("@A", nil))
	assert.False(t, registry.Eligible("@B", nil))

	copied := registry.Entries()
	copied[0].Name = "changed"
	assert.Equal(t, "a", registry.Entries()[0].Name)
	assert.Equal(t, 1, registry.Len())
}
