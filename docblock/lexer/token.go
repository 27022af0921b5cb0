package lexer

type Kind int

const (
	EOF Kind = iota
	Open
	Close
	EOL
	WS
	Tag
	Identifier
	Variable
	Punct
	String
	Other
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Open:       "Open",
	Close:      "Close",
	EOL:        "EOL",
	WS:         "WS",
	Tag:        "Tag",
	Identifier: "Identifier",
	Variable:   "Variable",
	Punct:      "Punct",
	String:     "String",
	Other:      "Other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a single lexeme of a doc comment. Value holds the raw bytes,
// so concatenating the values of all tokens reproduces the input.
type Token struct {
	Kind   Kind
	Value  string
	Offset int
}

func (t Token) End() int {
	return t.Offset + len(t.Value)
}

// IsPunct reports whether t is the punctuation token p.
func (t Token) IsPunct(p string) bool {
	return t.Kind == Punct && t.Value == p
}
