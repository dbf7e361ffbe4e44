// Package callcount decides which JVM method invocations count toward a
// performance measurement.
//
// The core is a small matching predicate over (class name, method name,
// method descriptor) triples. A bytecode instrumentation agent asks
// ClassMatches once per loaded class, then MethodMatches once per
// candidate call site, and inserts a counting probe where both answer
// true. The matcher itself is pure: no side effects, no knowledge of how
// the strings were extracted.
//
// # Basic Usage
//
// Build a matcher directly:
//
//	m := callcount.Allocations("java/util/ArrayList")
//	m.ClassMatches("java/util/ArrayList") // true
//	m.MethodMatches("<init>", "(I)V")     // true, every constructor overload
//
// Or drive a whole rule set from YAML:
//
//	profile, err := callcount.NewProfile(callcount.WithRuleFile("rules.yml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range profile.MatchersForClass("com/app/Widget") {
//	    if c.Matcher.MethodMatches("render", "(I)V") {
//	        // instrument this call site for rule c.Rule.ID
//	    }
//	}
package callcount

import (
	"fmt"

	"github.com/callcount/callcount/pkg/jvm"
	"github.com/callcount/callcount/pkg/matcher"
	"github.com/callcount/callcount/pkg/prefilter"
	"github.com/callcount/callcount/pkg/rule"
	"github.com/callcount/callcount/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/callcount/callcount" without
// subpackages.
type (
	// Matcher pairs a class predicate with a method predicate.
	Matcher = matcher.Matcher

	// ClassMatcher decides whether a class name is in scope.
	ClassMatcher = matcher.ClassMatcher

	// MethodMatcher decides whether a method is in scope.
	MethodMatcher = matcher.MethodMatcher

	// Method identifies one method by name and descriptor.
	Method = jvm.Method

	// Rule is one counting rule as declared in a rules file.
	Rule = types.Rule

	// Ruleset groups rules together by ID.
	Ruleset = types.Ruleset

	// Compiled pairs a rule with its ready-to-query matcher.
	Compiled = rule.Compiled
)

// ConstructorName is the sentinel method name for instance constructors.
const ConstructorName = jvm.ConstructorName

// Allocations counts constructions of className.
func Allocations(className string) Matcher {
	return matcher.Allocations(className)
}

// ForName counts every overload of methodName in className.
func ForName(className, methodName string) Matcher {
	return matcher.ForName(className, methodName)
}

// ForMethod counts exactly one overload of m in className.
func ForMethod(className string, m Method) Matcher {
	return matcher.ForMethod(className, m)
}

// ForRegex counts methods selected by class and method name patterns.
func ForRegex(classPattern, methodPattern string) (Matcher, error) {
	return matcher.ForRegex(classPattern, methodPattern)
}

// Profile is a compiled rule set ready for an instrumentation agent:
// every rule validated and compiled, with a class-name prefilter in
// front. Immutable after construction and safe for concurrent use.
type Profile struct {
	compiled []rule.Compiled
	pre      *prefilter.Prefilter
	byRule   map[*types.Rule]matcher.Matcher
}

// profileConfig holds profile construction options.
type profileConfig struct {
	rules    []*types.Rule
	ruleFile string
	ruleset  string
	include  []string
	exclude  []string
}

// Option configures a Profile.
type Option func(*profileConfig)

// WithRules uses the given rules instead of the builtin set.
func WithRules(rules []*Rule) Option {
	return func(c *profileConfig) {
		c.rules = rules
	}
}

// WithRuleFile loads rules from a YAML file instead of the builtin set.
func WithRuleFile(path string) Option {
	return func(c *profileConfig) {
		c.ruleFile = path
	}
}

// WithRuleset restricts the profile to the rules a builtin ruleset
// references, e.g. "cc.default".
func WithRuleset(id string) Option {
	return func(c *profileConfig) {
		c.ruleset = id
	}
}

// WithInclude keeps only rules whose ID matches one of the
// comma-separated regex patterns.
func WithInclude(patterns string) Option {
	return func(c *profileConfig) {
		c.include = rule.ParsePatterns(patterns)
	}
}

// WithExclude drops rules whose ID matches one of the comma-separated
// regex patterns. Applied after include.
func WithExclude(patterns string) Option {
	return func(c *profileConfig) {
		c.exclude = rule.ParsePatterns(patterns)
	}
}

// NewProfile validates, filters and compiles a rule set. Any malformed
// rule or pattern fails here, so a bad configuration aborts before
// instrumentation starts.
func NewProfile(opts ...Option) (*Profile, error) {
	config := &profileConfig{}
	for _, opt := range opts {
		opt(config)
	}

	loader := rule.NewLoader()

	rules := config.rules
	var err error
	switch {
	case rules != nil && config.ruleFile != "":
		return nil, fmt.Errorf("WithRules and WithRuleFile are mutually exclusive")
	case config.ruleFile != "":
		rules, err = loader.LoadRuleFile(config.ruleFile)
		if err != nil {
			return nil, fmt.Errorf("loading rules from %s: %w", config.ruleFile, err)
		}
	case rules == nil:
		rules, err = loader.LoadBuiltinRules()
		if err != nil {
			return nil, fmt.Errorf("loading builtin rules: %w", err)
		}
	}

	if config.ruleset != "" {
		rules, err = selectRuleset(loader, rules, config.ruleset)
		if err != nil {
			return nil, err
		}
	}

	rules, err = rule.Filter(rules, rule.FilterConfig{
		Include: config.include,
		Exclude: config.exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("filtering rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules left after filtering")
	}

	if err := rule.ValidateRules(rules); err != nil {
		return nil, err
	}

	compiled, err := rule.Compile(rules)
	if err != nil {
		return nil, err
	}

	byRule := make(map[*types.Rule]matcher.Matcher, len(compiled))
	for _, c := range compiled {
		byRule[c.Rule] = c.Matcher
	}

	return &Profile{
		compiled: compiled,
		pre:      prefilter.New(rules),
		byRule:   byRule,
	}, nil
}

// MatchersForClass returns the compiled rules whose class matcher
// accepts className, using the prefilter to skip most rules without
// running a regex. The agent calls this once per class load and then
// queries MethodMatches per call site on the survivors.
func (p *Profile) MatchersForClass(className string) []Compiled {
	candidates := p.pre.Filter(className)
	if len(candidates) == 0 {
		return nil
	}

	var result []Compiled
	for _, r := range candidates {
		m := p.byRule[r]
		if m.ClassMatches(className) {
			result = append(result, Compiled{Rule: r, Matcher: m})
		}
	}
	return result
}

// ClassMatches reports whether any rule is in scope for className.
func (p *Profile) ClassMatches(className string) bool {
	return len(p.MatchersForClass(className)) > 0
}

// RuleCount returns the number of compiled rules.
func (p *Profile) RuleCount() int {
	return len(p.compiled)
}

// Rules returns the compiled rules in rule order.
func (p *Profile) Rules() []*Rule {
	rules := make([]*Rule, len(p.compiled))
	for i, c := range p.compiled {
		rules[i] = c.Rule
	}
	return rules
}

// selectRuleset finds a builtin ruleset by ID and restricts rules to it.
func selectRuleset(loader *rule.Loader, rules []*types.Rule, id string) ([]*types.Rule, error) {
	rulesets, err := loader.LoadBuiltinRulesets()
	if err != nil {
		return nil, fmt.Errorf("loading builtin rulesets: %w", err)
	}
	for _, rs := range rulesets {
		if rs.ID == id {
			return rule.Select(rules, rs)
		}
	}
	return nil, fmt.Errorf("unknown ruleset: %s", id)
}

// LoadRulesFromFile loads counting rules from a YAML file.
// Use with WithRules to build a profile from a pre-loaded set.
func LoadRulesFromFile(path string) ([]*Rule, error) {
	return rule.NewLoader().LoadRuleFile(path)
}

// LoadBuiltinRules returns the builtin counting rules.
func LoadBuiltinRules() ([]*Rule, error) {
	return rule.NewLoader().LoadBuiltinRules()
}
