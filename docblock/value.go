package docblock

import (
	"strconv"
	"strings"
)

// TagValue is the parsed payload of a tag. The variants are the values of
// the built-in tags, the annotation grammar and the generic fallback.
type TagValue interface {
	String() string
	tagValue()
}

// GenericValue is the verbatim payload of a tag no grammar claimed.
type GenericValue struct {
	Value string
}

func (GenericValue) tagValue() {}

func (v GenericValue) String() string { return v.Value }

// ParamValue represents a @param tag.
type ParamValue struct {
	Type        string
	Variable    string
	ByRef       bool
	Variadic    bool
	Description string
}

func (ParamValue) tagValue() {}

func (v ParamValue) String() string {
	variable := v.Variable
	if v.Variadic {
		variable = "..." + variable
	}
	if v.ByRef {
		variable = "&" + variable
	}
	return joinNonEmpty(v.Type, variable, v.Description)
}

// VarValue represents a @var tag.
type VarValue struct {
	Type        string
	Variable    string
	Description string
}

func (VarValue) tagValue() {}

func (v VarValue) String() string { return joinNonEmpty(v.Type, v.Variable, v.Description) }

// ReturnValue represents a @return tag.
type ReturnValue struct {
	Type        string
	Description string
}

func (ReturnValue) tagValue() {}

func (v ReturnValue) String() string { return joinNonEmpty(v.Type, v.Description) }

// ThrowsValue represents a @throws tag.
type ThrowsValue struct {
	Type        string
	Description string
}

func (ThrowsValue) tagValue() {}

func (v ThrowsValue) String() string { return joinNonEmpty(v.Type, v.Description) }

// PropertyValue represents @property, @property-read and @property-write.
type PropertyValue struct {
	Type        string
	Property    string
	Description string
}

func (PropertyValue) tagValue() {}

func (v PropertyValue) String() string { return joinNonEmpty(v.Type, v.Property, v.Description) }

// DeprecatedValue represents a @deprecated tag.
type DeprecatedValue struct {
	Description string
}

func (DeprecatedValue) tagValue() {}

func (v DeprecatedValue) String() string { return v.Description }

// AnnotationValue is an annotation-style payload: an optional argument
// list in parentheses followed by an optional description. Host is the
// resolved name of the declaration carrying the annotation, when the
// parser has a resolver and the name is known. It is not rendered.
type AnnotationValue struct {
	Arguments   []Argument
	Parens      bool
	Description string
	Host        string
}

func (AnnotationValue) tagValue() {}

func (v AnnotationValue) String() string {
	var sb strings.Builder
	if v.Parens {
		sb.WriteString("(")
		writeArguments(&sb, v.Arguments)
		sb.WriteString(")")
	}
	if v.Description != "" {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(v.Description)
	}
	return sb.String()
}

// Get returns the argument with the given key.
func (v AnnotationValue) Get(key string) (Argument, bool) {
	for _, arg := range v.Arguments {
		if arg.Key == key {
			return arg, true
		}
	}
	return Argument{}, false
}

type ArgumentKind int

const (
	ArgumentScalar ArgumentKind = iota
	ArgumentList
	ArgumentAnnotation
)

// Argument is a single, optionally keyed, annotation argument. Scalars
// keep their source spelling, quotes included; lists and nested
// annotations keep their items in Items.
type Argument struct {
	Key string
	// Separator is "=" or ":" for keyed arguments.
	Separator string
	Kind      ArgumentKind
	Scalar    string
	Name      string
	Items     []Argument
}

func (a Argument) String() string {
	var sb strings.Builder
	if a.Key != "" {
		sb.WriteString(a.Key)
		if a.Separator == ":" {
			sb.WriteString(": ")
		} else {
			sb.WriteString("=")
		}
	}
	switch a.Kind {
	case ArgumentList:
		sb.WriteString("{")
		writeArguments(&sb, a.Items)
		sb.WriteString("}")
	case ArgumentAnnotation:
		sb.WriteString(a.Name)
		sb.WriteString("(")
		writeArguments(&sb, a.Items)
		sb.WriteString(")")
	default:
		sb.WriteString(a.Scalar)
	}
	return sb.String()
}

// Text returns a scalar argument with surrounding quotes removed.
func (a Argument) Text() string {
	if a.Kind != ArgumentScalar {
		return ""
	}
	if len(a.Scalar) >= 2 && (a.Scalar[0] == '"' || a.Scalar[0] == '\'') {
		if a.Scalar[0] == '"' {
			if s, err := strconv.Unquote(a.Scalar); err == nil {
				return s
			}
		}
		return a.Scalar[1 : len(a.Scalar)-1]
	}
	return a.Scalar
}

func writeArguments(sb *strings.Builder, args []Argument) {
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.String())
	}
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
