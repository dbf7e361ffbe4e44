package rule

import (
	"fmt"

	"github.com/callcount/callcount/internal/regex"
	"github.com/callcount/callcount/pkg/jvm"
	"github.com/callcount/callcount/pkg/types"
)

// ValidateRule checks rule consistency and required fields, including
// that regex patterns compile and descriptors parse. A rule that fails
// validation must not reach the agent; configuration errors surface
// before instrumentation starts, never mid-run.
func ValidateRule(r *types.Rule) error {
	if r == nil {
		return fmt.Errorf("rule is nil")
	}

	if r.ID == "" {
		return fmt.Errorf("rule ID is required")
	}
	if r.Name == "" {
		return fmt.Errorf("rule name is required")
	}

	switch r.Kind {
	case types.KindAllocations:
		if r.Class == "" {
			return fmt.Errorf("rule %s: allocations rule requires class", r.ID)
		}
		if r.Method != "" || r.Descriptor != "" {
			return fmt.Errorf("rule %s: allocations rule must not set method or descriptor", r.ID)
		}
	case types.KindName:
		if r.Class == "" || r.Method == "" {
			return fmt.Errorf("rule %s: name rule requires class and method", r.ID)
		}
		if r.Descriptor != "" {
			return fmt.Errorf("rule %s: name rule must not set descriptor (use kind signature)", r.ID)
		}
	case types.KindSignature:
		if r.Class == "" || r.Method == "" || r.Descriptor == "" {
			return fmt.Errorf("rule %s: signature rule requires class, method and descriptor", r.ID)
		}
		if _, _, err := jvm.ParseMethodDescriptor(r.Descriptor); err != nil {
			return fmt.Errorf("rule %s: %w", r.ID, err)
		}
	case types.KindRegex:
		if r.ClassPattern == "" || r.MethodPattern == "" {
			return fmt.Errorf("rule %s: regex rule requires class_pattern and method_pattern", r.ID)
		}
		if _, err := regex.Compile(r.ClassPattern); err != nil {
			return fmt.Errorf("rule %s: class pattern: %w", r.ID, err)
		}
		if _, err := regex.Compile(r.MethodPattern); err != nil {
			return fmt.Errorf("rule %s: method pattern: %w", r.ID, err)
		}
	case "":
		return fmt.Errorf("rule %s: kind is required", r.ID)
	default:
		return fmt.Errorf("rule %s: unknown kind %q", r.ID, r.Kind)
	}

	// Pattern fields are exclusive to regex rules.
	if r.Kind != types.KindRegex && (r.ClassPattern != "" || r.MethodPattern != "") {
		return fmt.Errorf("rule %s: class_pattern/method_pattern only apply to kind regex", r.ID)
	}

	return nil
}

// ValidateRules validates every rule and checks for duplicate IDs.
func ValidateRules(rules []*types.Rule) error {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if err := ValidateRule(r); err != nil {
			return err
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate rule ID: %s", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}

// ValidateRuleset checks ruleset consistency and required fields.
// knownRuleIDs is a map of valid rule IDs for reference checking.
func ValidateRuleset(rs *types.Ruleset, knownRuleIDs map[string]bool) error {
	if rs == nil {
		return fmt.Errorf("ruleset is nil")
	}

	if rs.ID == "" {
		return fmt.Errorf("ruleset ID is required")
	}
	if rs.Name == "" {
		return fmt.Errorf("ruleset name is required")
	}
	if len(rs.RuleIDs) == 0 {
		return fmt.Errorf("ruleset %s must reference at least one rule", rs.ID)
	}

	if knownRuleIDs != nil {
		for _, ruleID := range rs.RuleIDs {
			if !knownRuleIDs[ruleID] {
				return fmt.Errorf("ruleset %s references unknown rule ID: %s", rs.ID, ruleID)
			}
		}
	}

	seen := make(map[string]bool)
	for _, ruleID := range rs.RuleIDs {
		if seen[ruleID] {
			return fmt.Errorf("ruleset %s contains duplicate rule ID: %s", rs.ID, ruleID)
		}
		seen[ruleID] = true
	}

	return nil
}
