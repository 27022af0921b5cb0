// Package grammar selects and runs the parser for a tag's payload.
//
// Grammars are registered with a MatchRule that decides eligibility either
// by tag name or by the kind of the declaration that owns the comment.
// Registries are built once and never mutated, so a single Registry can be
// shared by concurrent parses.
package grammar

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
	"github.com/dhamidi/docfront/names"
	"github.com/dhamidi/docfront/syntax"
)

var log = commonlog.GetLogger("docfront.grammar")

type ruleKind int

const (
	ruleName ruleKind = iota + 1
	ruleHost
)

// MatchRule decides whether a grammar is eligible for a tag.
type MatchRule struct {
	kind  ruleKind
	name  string
	hosts []syntax.Kind
}

// NameMatch matches tags named name, compared case-insensitively with any
// leading "@" stripped from both sides.
func NameMatch(name string) MatchRule {
	return MatchRule{kind: ruleName, name: strings.TrimPrefix(name, "@")}
}

// HostMatch matches any tag on a declaration whose kind is, or descends
// from, one of kinds.
func HostMatch(kinds ...syntax.Kind) MatchRule {
	return MatchRule{kind: ruleHost, hosts: append([]syntax.Kind(nil), kinds...)}
}

func (r MatchRule) Matches(tag string, host syntax.Node) bool {
	switch r.kind {
	case ruleName:
		return strings.EqualFold(r.name, strings.TrimPrefix(tag, "@"))
	case ruleHost:
		if host == nil {
			return false
		}
		kind := syntax.KindOf(host)
		for _, target := range r.hosts {
			if kind.Is(target) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (r MatchRule) String() string {
	switch r.kind {
	case ruleName:
		return "name:" + r.name
	case ruleHost:
		hosts := make([]string, len(r.hosts))
		for i, k := range r.hosts {
			hosts[i] = k.String()
		}
		return "host:" + strings.Join(hosts, ",")
	default:
		return "invalid"
	}
}

// Context is what a grammar knows about the tag it is parsing.
type Context struct {
	// Tag is the tag name including the leading "@".
	Tag string
	// Host is the declaration the comment is attached to. It may be nil.
	Host syntax.Node
	// Names resolves program names for grammars that need them. It may
	// be nil.
	Names *names.Resolver
}

// ParseFunc parses a tag payload starting just after the tag name. A nil
// value with a nil error declines the tag; a grammar that declines must
// leave the cursor where it found it.
type ParseFunc func(ctx Context, cur *lexer.Cursor) (docblock.TagValue, error)

// Entry is a registered grammar.
type Entry struct {
	// Name identifies the grammar in logs and errors.
	Name  string
	Rule  MatchRule
	Parse ParseFunc
}

// DeclineError reports a grammar that declined a tag after consuming
// tokens.
type DeclineError struct {
	Grammar string
	Tag     string
	From    int
	To      int
}

func (e *DeclineError) Error() string {
	return fmt.Sprintf("grammar %s declined %s after consuming tokens %d..%d", e.Grammar, e.Tag, e.From, e.To)
}
