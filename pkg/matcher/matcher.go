package matcher

import (
	"fmt"

	"github.com/callcount/callcount/pkg/jvm"
)

// Matcher pairs one ClassMatcher with one MethodMatcher. It is an
// immutable value: both fields are fixed at construction and every query
// is a pure function, so a Matcher is safe for unsynchronized use from
// any number of goroutines.
//
// There is deliberately no combined class-and-method query. The agent
// calls ClassMatches once when a class loads and skips the per-call-site
// MethodMatches checks entirely when the class is out of scope.
type Matcher struct {
	class  ClassMatcher
	method MethodMatcher
}

// New pairs a class matcher with a method matcher.
func New(class ClassMatcher, method MethodMatcher) Matcher {
	return Matcher{class: class, method: method}
}

// ClassMatches reports whether className is in scope for instrumentation.
func (m Matcher) ClassMatches(className string) bool {
	return m.class.Matches(className)
}

// MethodMatches reports whether the method identified by name and
// descriptor should be counted.
func (m Matcher) MethodMatches(methodName, methodDescriptor string) bool {
	return m.method.Matches(methodName, methodDescriptor)
}

// Allocations counts constructions of className: exact class match plus
// the constructor sentinel name, any descriptor (every constructor
// overload counts).
func Allocations(className string) Matcher {
	return New(ExactClass(className), ExactMethod(jvm.ConstructorName))
}

// ForName counts every overload of methodName in className, both matched
// by exact name.
func ForName(className, methodName string) Matcher {
	return New(ExactClass(className), ExactMethod(methodName))
}

// ForMethod counts exactly one overload: the method in className whose
// name and descriptor equal those of m. The descriptor is derived once
// from the method's parameter and return types (see jvm.NewMethod) and
// fixed thereafter.
func ForMethod(className string, m jvm.Method) Matcher {
	return New(ExactClass(className), ExactSignature(m.Name, m.Descriptor))
}

// ForRegex counts every method whose name matches methodPattern in every
// class whose name matches classPattern. Either pattern failing to
// compile aborts construction.
func ForRegex(classPattern, methodPattern string) (Matcher, error) {
	class, err := ClassRegex(classPattern)
	if err != nil {
		return Matcher{}, fmt.Errorf("class pattern: %w", err)
	}
	method, err := MethodRegex(methodPattern)
	if err != nil {
		return Matcher{}, fmt.Errorf("method pattern: %w", err)
	}
	return New(class, method), nil
}
