// Package regex compiles patterns with whole-string match semantics.
//
// Patterns are anchored at compile time, so a match succeeds only if the
// entire input is consumed. Compilation tries the standard library engine
// first (linear-time RE2 subset) and falls back to regexp2 for patterns
// using Perl features such as lookaround or backreferences.
package regex

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// backtrackTimeout bounds regexp2 matching to prevent catastrophic
// backtracking on hostile inputs.
const backtrackTimeout = 5 * time.Second

// Regexp is a compiled pattern with full-match semantics.
// Implementations are safe for concurrent use.
type Regexp interface {
	// MatchString reports whether s matches the pattern over its entire
	// length. A substring hit is not a match.
	MatchString(s string) bool

	// String returns the original pattern source.
	String() string
}

// Compile compiles pattern with whole-string anchoring.
// Invalid patterns fail here, never at match time.
func Compile(pattern string) (Regexp, error) {
	anchored := `\A(?:` + pattern + `)\z`

	// RE2 first: guaranteed linear time and an error-free match API.
	if re, err := regexp.Compile(anchored); err == nil {
		return &stdRegexp{source: pattern, re: re}, nil
	}

	// Fallback for Perl-style patterns the standard engine rejects.
	re2, err := regexp2.Compile(anchored, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	re2.MatchTimeout = backtrackTimeout
	return &perlRegexp{source: pattern, re: re2}, nil
}

// MustCompile is like Compile but panics on error.
// Intended for patterns known valid at build time.
func MustCompile(pattern string) Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// FromRegexp adapts an already-compiled standard library pattern,
// imposing full-match semantics by re-anchoring its source text.
func FromRegexp(re *regexp.Regexp) Regexp {
	source := re.String()
	// Wrapping a valid pattern in a non-capturing group cannot fail.
	anchored := regexp.MustCompile(`\A(?:` + source + `)\z`)
	return &stdRegexp{source: source, re: anchored}
}

type stdRegexp struct {
	source string
	re     *regexp.Regexp
}

func (r *stdRegexp) MatchString(s string) bool { return r.re.MatchString(s) }
func (r *stdRegexp) String() string            { return r.source }

type perlRegexp struct {
	source string
	re     *regexp2.Regexp
}

func (r *perlRegexp) MatchString(s string) bool {
	// A timeout reports no match; matching stays total.
	ok, err := r.re.MatchString(s)
	return err == nil && ok
}

func (r *perlRegexp) String() string { return r.source }
