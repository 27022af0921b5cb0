// Package config loads the grammar registrations for doc block parsing
// from YAML, TOML or JSON files.
package config

import (
	"fmt"

	"github.com/dhamidi/docfront/docblock/grammar"
	"github.com/dhamidi/docfront/syntax"
)

const DefaultWidth = 80

// Config is the decoded configuration file.
type Config struct {
	// Grammars are registered in file order.
	Grammars []GrammarConfig
	// Width is the wrap width of the text output.
	Width int
}

// GrammarConfig registers a grammar either for a tag name or for every
// tag on declarations of the given kinds.
type GrammarConfig struct {
	Name    string
	Hosts   []syntax.Kind
	Grammar string
}

func Default() Config {
	return Config{Width: DefaultWidth}
}

// grammars are the parse routines a configuration can refer to by name.
var grammars = map[string]grammar.ParseFunc{
	"annotation": grammar.Annotation(),
	"baseline":   grammar.Baseline,
}

// GrammarNames lists the grammar names accepted in configuration files.
func GrammarNames() []string {
	return []string{"annotation", "baseline"}
}

func (g GrammarConfig) rule() grammar.MatchRule {
	if g.Name != "" {
		return grammar.NameMatch(g.Name)
	}
	return grammar.HostMatch(g.Hosts...)
}

func (g GrammarConfig) validate() error {
	if (g.Name == "") == (len(g.Hosts) == 0) {
		return fmt.Errorf("exactly one of name or hosts is required")
	}
	if _, ok := grammars[g.Grammar]; !ok {
		return fmt.Errorf("unknown grammar %q", g.Grammar)
	}
	return nil
}

// Registry builds the grammar registry described by c.
func (c Config) Registry() (*grammar.Registry, error) {
	entries := make([]grammar.Entry, 0, len(c.Grammars))
	for i, g := range c.Grammars {
		if err := g.validate(); err != nil {
			return nil, fmt.Errorf("grammars[%d]: %w", i, err)
		}
		entries = append(entries, grammar.Entry{
			Name:  g.Grammar,
			Rule:  g.rule(),
			Parse: grammars[g.Grammar],
		})
	}
	return grammar.NewRegistry(entries...), nil
}
