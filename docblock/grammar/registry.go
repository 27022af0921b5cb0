package grammar

import (
	"fmt"
	"strings"

	"github.com/dhamidi/docfront/docblock"
	"github.com/dhamidi/docfront/docblock/lexer"
	"github.com/dhamidi/docfront/syntax"
)

// reservedTags always use the baseline grammar. A tag is reserved when its
// name, without the "@", is one of these or one of these followed by "-",
// so @property-read and @param-out are reserved but @variant is not.
var reservedTags = []string{"var", "param", "return", "throws", "property", "deprecated"}

// IsReserved reports whether tag bypasses grammar dispatch.
func IsReserved(tag string) bool {
	return reservedBase(tag) != ""
}

func reservedBase(tag string) string {
	name := strings.TrimPrefix(tag, "@")
	for _, reserved := range reservedTags {
		if name == reserved || strings.HasPrefix(name, reserved+"-") {
			return reserved
		}
	}
	return ""
}

// Registry is an ordered, immutable list of grammars.
type Registry struct {
	entries []Entry
}

func NewRegistry(entries ...Entry) *Registry {
	return &Registry{entries: append([]Entry(nil), entries...)}
}

// Entries returns a copy of the registered grammars in order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	return append([]Entry(nil), r.entries...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Eligible reports whether some registered grammar matches tag on host.
func (r *Registry) Eligible(tag string, host syntax.Node) bool {
	if r == nil {
		return false
	}
	for _, entry := range r.entries {
		if entry.Rule.Matches(tag, host) {
			return true
		}
	}
	return false
}

// Resolve parses the payload of ctx.Tag. Reserved tags go straight to the
// baseline grammar. Otherwise eligible grammars are tried in registration
// order until one produces a value, and the baseline grammar handles the
// tag if none does.
func (r *Registry) Resolve(ctx Context, cur *lexer.Cursor) (docblock.TagValue, error) {
	if IsReserved(ctx.Tag) {
		log.Debugf("%s: reserved, using baseline", ctx.Tag)
		return Baseline(ctx, cur)
	}

	for _, entry := range r.Entries() {
		if !entry.Rule.Matches(ctx.Tag, ctx.Host) {
			continue
		}
		start := cur.Index()
		value, err := entry.Parse(ctx, cur)
		if err != nil {
			return nil, fmt.Errorf("grammar %s on %s: %w", entry.Name, ctx.Tag, err)
		}
		if value != nil {
			log.Debugf("%s: handled by %s (%s)", ctx.Tag, entry.Name, entry.Rule)
			return value, nil
		}
		if cur.Index() != start {
			return nil, &DeclineError{Grammar: entry.Name, Tag: ctx.Tag, From: start, To: cur.Index()}
		}
		log.Debugf("%s: declined by %s", ctx.Tag, entry.Name)
	}

	log.Debugf("%s: no grammar, using baseline", ctx.Tag)
	return Baseline(ctx, cur)
}
