package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/docfront/config"
	"github.com/dhamidi/docfront/docblock/parser"
	"github.com/dhamidi/docfront/names"
	"github.com/dhamidi/docfront/syntax"
)

type settings struct {
	config   config.Config
	parser   *parser.Parser
	resolver *names.Resolver
}

func loadSettings(configPath string) (*settings, error) {
	path, err := config.Find(".", configPath)
	if err != nil {
		return nil, fmt.Errorf("find config: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	resolver := names.NewResolver()
	return &settings{
		config:   cfg,
		parser:   parser.New(registry, parser.WithResolver(resolver)),
		resolver: resolver,
	}, nil
}

// readInput reads the named file, or stdin for "" and "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

// splitLeadingSpace separates whitespace before the comment opener, which
// the lexer expects at the very start of its input.
func splitLeadingSpace(source string) (string, string) {
	trimmed := strings.TrimLeft(source, " \t\r\n")
	return source[:len(source)-len(trimmed)], trimmed
}

// hostNode builds the declaration a comment is attached to from a
// "kind" or "kind:name" flag value.
func hostNode(value string) (syntax.Node, error) {
	if value == "" {
		return nil, nil
	}
	kindName, name, _ := strings.Cut(value, ":")
	kind, ok := syntax.ParseKind(strings.ReplaceAll(strings.ToLower(kindName), "-", "_"))
	if !ok {
		return nil, fmt.Errorf("unknown host kind %q", kindName)
	}

	var ident *syntax.Identifier
	if name != "" {
		ident = syntax.Ident(name)
	}
	switch kind {
	case syntax.KindClass:
		return &syntax.Class{Name: ident}, nil
	case syntax.KindInterface:
		return &syntax.Interface{Name: ident}, nil
	case syntax.KindTrait:
		return &syntax.Trait{Name: ident}, nil
	case syntax.KindEnum:
		return &syntax.Enum{Name: ident}, nil
	case syntax.KindFunction:
		return &syntax.Function{Name: ident}, nil
	case syntax.KindClassMethod:
		return &syntax.ClassMethod{Name: ident}, nil
	case syntax.KindClassConst:
		return &syntax.ClassConst{Consts: []*syntax.Const{{Name: ident}}}, nil
	case syntax.KindProperty:
		return &syntax.Property{Props: []*syntax.PropertyItem{{Name: ident}}}, nil
	}
	return nil, fmt.Errorf("host kind %s cannot own a doc comment", kind)
}

// nameNode turns a command line name into a program node: "Class::CONST"
// becomes a class constant fetch, anything else a name.
func nameNode(name string) syntax.Node {
	if class, constant, ok := strings.Cut(name, "::"); ok {
		return &syntax.ClassConstFetch{Class: syntax.QName(class), Name: syntax.Ident(constant)}
	}
	return syntax.QName(name)
}
