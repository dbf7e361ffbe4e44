// Package matcher decides which observed invocations count toward a
// measurement. A Matcher pairs a class predicate with a method predicate;
// the instrumentation agent queries ClassMatches once per loaded class
// and MethodMatches once per candidate call site.
//
// Matchers compare names verbatim. No slash/dot translation happens
// here: a matcher built from the canonical form "com.app.Widget" will not
// match the internal form "com/app/Widget". Callers normalize at the
// boundary with jvm.InternalName or jvm.CanonicalName before building or
// querying a matcher (pkg/rule does this when compiling rule files).
package matcher

import (
	stdregexp "regexp"

	"github.com/callcount/callcount/internal/regex"
)

type classKind int

const (
	classExact classKind = iota
	classPattern
)

// ClassMatcher decides whether a fully-qualified class name is in scope.
// It is an immutable value with exactly two variants: exact name and
// regex. The zero value matches only the empty class name.
type ClassMatcher struct {
	kind classKind
	name string
	re   regex.Regexp
}

// ExactClass matches one class by exact, case-sensitive name equality.
// The name is compared as given; see the package comment for the
// internal-vs-canonical form contract.
func ExactClass(name string) ClassMatcher {
	return ClassMatcher{kind: classExact, name: name}
}

// ClassRegex matches classes whose full name matches pattern. The
// pattern is compiled with whole-string anchoring; a malformed pattern
// fails here so a misconfigured matcher aborts before any class is
// processed.
func ClassRegex(pattern string) (ClassMatcher, error) {
	re, err := regex.Compile(pattern)
	if err != nil {
		return ClassMatcher{}, err
	}
	return ClassMatcher{kind: classPattern, re: re}, nil
}

// ClassRegexp builds a regex class matcher from an already-compiled
// standard library pattern, imposing whole-string semantics.
func ClassRegexp(re *stdregexp.Regexp) ClassMatcher {
	return ClassMatcher{kind: classPattern, re: regex.FromRegexp(re)}
}

// Matches reports whether className is in scope. Pure and total: it
// never errors and never mutates the matcher.
func (m ClassMatcher) Matches(className string) bool {
	switch m.kind {
	case classExact:
		return className == m.name
	case classPattern:
		return m.re.MatchString(className)
	}
	return false
}
