package rule

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/callcount/callcount/pkg/types"
)

// FilterConfig specifies include and exclude patterns for rule filtering.
type FilterConfig struct {
	Include []string // Regex patterns - only matching rules included
	Exclude []string // Regex patterns - matching rules excluded
}

// ParsePatterns splits a comma-separated string into individual patterns.
// Patterns are trimmed of whitespace.
func ParsePatterns(patterns string) []string {
	if patterns == "" {
		return []string{}
	}

	parts := strings.Split(patterns, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// Filter applies include and exclude patterns to rule IDs.
// Include is applied first, then exclude.
// Empty include means "include all".
// Returns error if any pattern is invalid regex.
func Filter(rules []*types.Rule, config FilterConfig) ([]*types.Rule, error) {
	if len(rules) == 0 {
		return rules, nil
	}

	var includeRegexes []*regexp.Regexp
	for _, pattern := range config.Include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		includeRegexes = append(includeRegexes, re)
	}

	var excludeRegexes []*regexp.Regexp
	for _, pattern := range config.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		excludeRegexes = append(excludeRegexes, re)
	}

	filtered := rules
	if len(includeRegexes) > 0 {
		filtered = applyInclude(rules, includeRegexes)
	}
	if len(excludeRegexes) > 0 {
		filtered = applyExclude(filtered, excludeRegexes)
	}

	return filtered, nil
}

// Select returns the rules a ruleset references, in rule order.
// Returns error if the ruleset references an unknown rule ID.
func Select(rules []*types.Rule, rs *types.Ruleset) ([]*types.Rule, error) {
	wanted := make(map[string]bool, len(rs.RuleIDs))
	for _, id := range rs.RuleIDs {
		wanted[id] = true
	}

	result := make([]*types.Rule, 0, len(rs.RuleIDs))
	for _, r := range rules {
		if wanted[r.ID] {
			result = append(result, r)
			delete(wanted, r.ID)
		}
	}

	for id := range wanted {
		return nil, fmt.Errorf("ruleset %s references unknown rule ID: %s", rs.ID, id)
	}
	return result, nil
}

func applyInclude(rules []*types.Rule, regexes []*regexp.Regexp) []*types.Rule {
	result := make([]*types.Rule, 0)
	for _, rule := range rules {
		if matchesAny(rule.ID, regexes) {
			result = append(result, rule)
		}
	}
	return result
}

func applyExclude(rules []*types.Rule, regexes []*regexp.Regexp) []*types.Rule {
	result := make([]*types.Rule, 0)
	for _, rule := range rules {
		if !matchesAny(rule.ID, regexes) {
			result = append(result, rule)
		}
	}
	return result
}

func matchesAny(ruleID string, regexes []*regexp.Regexp) bool {
	for _, re := range regexes {
		if re.MatchString(ruleID) {
			return true
		}
	}
	return false
}
