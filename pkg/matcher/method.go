package matcher

import (
	stdregexp "regexp"

	"github.com/callcount/callcount/internal/regex"
)

type methodKind int

const (
	methodExact methodKind = iota
	methodPattern
	methodSignature
)

// MethodMatcher decides whether a method within an in-scope class is in
// scope. Three variants: exact name (descriptor ignored, so every
// overload matches), regex on the name (descriptor ignored), and full
// signature (name plus descriptor, the only variant that can single out
// one overload).
type MethodMatcher struct {
	kind       methodKind
	name       string
	descriptor string
	re         regex.Regexp
}

// ExactMethod matches every method with the given name, regardless of
// descriptor. Use this to count all overloads sharing a name.
func ExactMethod(name string) MethodMatcher {
	return MethodMatcher{kind: methodExact, name: name}
}

// MethodRegex matches methods whose name fully matches pattern; the
// descriptor is ignored. A malformed pattern fails at construction.
func MethodRegex(pattern string) (MethodMatcher, error) {
	re, err := regex.Compile(pattern)
	if err != nil {
		return MethodMatcher{}, err
	}
	return MethodMatcher{kind: methodPattern, re: re}, nil
}

// MethodRegexp builds a regex method matcher from an already-compiled
// standard library pattern, imposing whole-string semantics.
func MethodRegexp(re *stdregexp.Regexp) MethodMatcher {
	return MethodMatcher{kind: methodPattern, re: regex.FromRegexp(re)}
}

// ExactSignature matches exactly one overload: the method whose name and
// descriptor both equal the given values. The descriptor follows the
// standard method-descriptor grammar, e.g. "(I)V".
func ExactSignature(name, descriptor string) MethodMatcher {
	return MethodMatcher{kind: methodSignature, name: name, descriptor: descriptor}
}

// Matches reports whether the (name, descriptor) pair is in scope.
// Name-only variants must return the same result for every descriptor
// value.
func (m MethodMatcher) Matches(methodName, methodDescriptor string) bool {
	switch m.kind {
	case methodExact:
		return methodName == m.name
	case methodPattern:
		return m.re.MatchString(methodName)
	case methodSignature:
		return methodName == m.name && methodDescriptor == m.descriptor
	}
	return false
}
