package names

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/docfront/syntax"
)

func TestIsName(t *testing.T) {
	widget := &syntax.Class{Name: syntax.Ident("Widget")}

	tests := []struct {
		pattern string
		want    bool
	}{
		{"*idget", true},
		{"W*", true},
		{"w*", false},
		{"#^Wid.*$#", true},
		{"#^wid.*$#", false},
		{"/^Widget$/", true},
		{"widget", true},
		{"WIDGET", true},
		{"Gadget", false},
		{"", false},
		{"#[#", false},
	}

	r := NewResolver()
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsName(widget, tt.pattern))
		})
	}
}

func TestIsNameObjectIsCaseSensitive(t *testing.T) {
	r := NewResolver()
	assert.False(t, r.IsName(syntax.Ident("object"), "Object"))
	assert.True(t, r.IsName(syntax.Ident("Object"), "Object"))
	// Other names still compare case-insensitively.
	assert.True(t, r.IsName(syntax.Ident("object"), "OBJECT"))
}

func TestIsNameUnresolvable(t *testing.T) {
	r := NewResolver()
	assert.False(t, r.IsName(&syntax.Class{}, "*"))
	assert.False(t, r.IsName(&syntax.Expr{}, ""))
}

func TestIsNameGlobTreatsBackslashLiterally(t *testing.T) {
	r := NewResolver()
	color := syntax.QName(`App\Color`)

	assert.True(t, r.IsName(color, `App\*`))
	assert.True(t, r.IsName(color, `*\Color`))
	assert.False(t, r.IsName(color, `Lib\*`))

	fetch := &syntax.ClassConstFetch{Class: color, Name: syntax.Ident("RED")}
	assert.True(t, r.IsName(fetch, "*::RED"))
	assert.True(t, r.IsName(fetch, `App\Color::*`))
}

func TestIsNameBookendedGlobIsRegexp(t *testing.T) {
	r := NewResolver()
	// "*x*" starts and ends with the same non-letter, so it is read as the
	// regular expression "x".
	assert.True(t, r.IsName(syntax.Ident("box"), "*x*"))
	assert.False(t, r.IsName(syntax.Ident("bag"), "*x*"))
}

func TestIsNames(t *testing.T) {
	repositoryMethods := []string{
		"createQueryBuilder",
		"find",
		"findBy",
		"findAll",
		"findOneBy",
		"count",
	}

	r := NewResolver()
	call := func(method string) syntax.Node {
		return &syntax.MethodCall{Var: &syntax.Variable{Name: "this"}, Name: syntax.Ident(method)}
	}

	assert.True(t, r.IsNames(call("findAll"), repositoryMethods))
	assert.True(t, r.IsNames(call("FINDBY"), repositoryMethods))
	assert.False(t, r.IsNames(call("persist"), repositoryMethods))
	assert.False(t, r.IsNames(call("findAll"), nil))
	assert.False(t, r.IsNames(&syntax.MethodCall{Name: &syntax.Expr{}}, repositoryMethods))
}

func TestMatchNameCachesInvalidPatterns(t *testing.T) {
	r := NewResolver()
	assert.False(t, r.MatchName("abc", "#(#"))
	assert.False(t, r.MatchName("abc", "#(#"))
	r.mu.Lock()
	re, ok := r.regexps["#(#"]
	r.mu.Unlock()
	assert.True(t, ok)
	assert.Nil(t, re)
}

func TestZeroResolver(t *testing.T) {
	var r Resolver
	assert.True(t, r.MatchName("Widget", "#idg#"))
}

func TestIsNameSingleNonLetterNeverMatches(t *testing.T) {
	r := NewResolver()
	widget := syntax.Ident("Widget")
	for _, pattern := range []string{"*", "#", "/", "1"} {
		t.Run(pattern, func(t *testing.T) {
			assert.False(t, r.IsName(widget, pattern))
		})
	}
	assert.True(t, r.IsName(syntax.Ident("w"), "W"), "a single letter is a plain name")
}

func TestIsNameGlobSemantics(t *testing.T) {
	r := NewResolver()
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"Foo", "*{Foo,Bar}", true},
		{"Bar", "*{Foo,Bar}", true},
		{"Baz", "*{Foo,Bar}", false},
		{`App\Color`, `App\{Color,Size}*`, true},
		{"App/Widget", "App*", false},
		{"App/Widget", "App/*", true},
	}
	for _, tt := range tests {
		t.Run(tt.name+" "+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MatchName(tt.name, tt.pattern))
		})
	}
}
