package names

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dlclark/regexp2"

	"github.com/dhamidi/docfront/syntax"
)

// IsName reports whether the resolved name of n matches pattern.
//
// A pattern whose first and last characters are the same non-letter is a
// delimited regular expression ("#^Foo.*$#"). A pattern containing "*" is
// a case-sensitive glob in which backslashes are literal. "Object" must
// match exactly. Anything else is compared case-insensitively.
func (r *Resolver) IsName(n syntax.Node, pattern string) bool {
	name, ok := r.GetName(n)
	if !ok {
		return false
	}
	return r.MatchName(name, pattern)
}

// IsNames reports whether any of patterns matches n.
func (r *Resolver) IsNames(n syntax.Node, patterns []string) bool {
	for _, pattern := range patterns {
		if r.IsName(n, pattern) {
			return true
		}
	}
	return false
}

// MatchName applies the IsName pattern rules to an already resolved name.
func (r *Resolver) MatchName(name, pattern string) bool {
	if pattern == "" {
		return false
	}

	if isDelimitedRegexp(pattern) {
		if len(pattern) < 2 {
			return false
		}
		re := r.compile(pattern)
		if re == nil {
			return false
		}
		matched, err := re.MatchString(name)
		if err != nil {
			log.Debugf("regexp %s on %q: %s", pattern, name, err)
			return false
		}
		return matched
	}

	if strings.Contains(pattern, "*") {
		matched, err := doublestar.Match(escapeBackslashes(pattern), name)
		if err != nil {
			log.Debugf("glob %s: %s", pattern, err)
			return false
		}
		return matched
	}

	if pattern == "Object" {
		return name == pattern
	}

	return strings.EqualFold(name, pattern)
}

// isDelimitedRegexp reports whether pattern starts and ends with the same
// non-letter. A single non-letter qualifies, with an empty delimiter pair
// and no body.
func isDelimitedRegexp(pattern string) bool {
	if pattern == "" {
		return false
	}
	first, last := pattern[0], pattern[len(pattern)-1]
	return first == last && !isASCIILetter(first)
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// escapeBackslashes makes namespace separators literal in glob patterns.
func escapeBackslashes(pattern string) string {
	return strings.ReplaceAll(pattern, `\`, `\\`)
}

// compile returns the cached expression for a delimited pattern, or nil
// when the pattern does not compile.
func (r *Resolver) compile(pattern string) *regexp2.Regexp {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.regexps == nil {
		r.regexps = make(map[string]*regexp2.Regexp)
	}
	if re, ok := r.regexps[pattern]; ok {
		return re
	}
	re, err := regexp2.Compile(pattern[1:len(pattern)-1], regexp2.None)
	if err != nil {
		log.Debugf("invalid pattern %s: %s", pattern, err)
		re = nil
	}
	r.regexps[pattern] = re
	return re
}
