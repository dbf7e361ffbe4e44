package rule

import "embed"

// builtinRulesFS embeds the built-in rules and rulesets: a starter set
// of JDK counting rules for common allocation and collection hot spots.
//
//go:embed rules/*.yml rulesets/*.yml
var builtinRulesFS embed.FS
