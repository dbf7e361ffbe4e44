package rule

import (
	"fmt"

	"github.com/callcount/callcount/pkg/jvm"
	"github.com/callcount/callcount/pkg/matcher"
	"github.com/callcount/callcount/pkg/types"
)

// Compiled pairs a rule with its ready-to-query matcher.
type Compiled struct {
	Rule    *types.Rule
	Matcher matcher.Matcher
}

// CompileRule builds the matcher a rule describes.
//
// This is the normalization boundary for exact class names: rules may
// write either java.util.ArrayList or java/util/ArrayList, and both
// compile to a matcher that expects the internal slash-separated form
// the agent passes. Class patterns are not rewritten; they must be
// written against the internal form.
func CompileRule(r *types.Rule) (matcher.Matcher, error) {
	if err := ValidateRule(r); err != nil {
		return matcher.Matcher{}, err
	}

	class := jvm.InternalName(r.Class)

	switch r.Kind {
	case types.KindAllocations:
		return matcher.Allocations(class), nil
	case types.KindName:
		return matcher.ForName(class, r.Method), nil
	case types.KindSignature:
		return matcher.ForMethod(class, jvm.Method{Name: r.Method, Descriptor: r.Descriptor}), nil
	case types.KindRegex:
		m, err := matcher.ForRegex(r.ClassPattern, r.MethodPattern)
		if err != nil {
			return matcher.Matcher{}, fmt.Errorf("rule %s: %w", r.ID, err)
		}
		return m, nil
	}
	return matcher.Matcher{}, fmt.Errorf("rule %s: unknown kind %q", r.ID, r.Kind)
}

// Compile builds matchers for every rule, failing on the first invalid
// rule so a misconfigured rules file aborts setup.
func Compile(rules []*types.Rule) ([]Compiled, error) {
	compiled := make([]Compiled, 0, len(rules))
	for _, r := range rules {
		m, err := CompileRule(r)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, Compiled{Rule: r, Matcher: m})
	}
	return compiled, nil
}
