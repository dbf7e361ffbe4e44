// Package prefilter narrows the rule set per loaded class before any
// regex runs. Class loading is hot; most classes match no rule, and an
// Aho-Corasick pass over literal keywords rejects them in one scan.
package prefilter

import (
	"github.com/cloudflare/ahocorasick"

	"github.com/callcount/callcount/pkg/jvm"
	"github.com/callcount/callcount/pkg/types"
)

// Prefilter uses Aho-Corasick for efficient keyword matching over class
// names.
type Prefilter struct {
	matcher        *ahocorasick.Matcher
	keywords       []string                 // keyword at each index
	keywordRules   map[string][]*types.Rule // keyword -> rules needing it
	noKeywordRules []*types.Rule            // rules without keywords (always checked)
}

// New creates a prefilter from rules.
//
// Exact-class rules contribute their class name in both the internal and
// canonical forms, so the prefilter works whichever convention the agent
// feeds it. Regex rules rely on declared keywords; a regex rule with no
// keywords is always passed through.
func New(rules []*types.Rule) *Prefilter {
	pf := &Prefilter{
		keywordRules:   make(map[string][]*types.Rule),
		noKeywordRules: make([]*types.Rule, 0),
	}

	keywordSet := make(map[string]bool)
	add := func(keyword string, r *types.Rule) {
		if !keywordSet[keyword] {
			keywordSet[keyword] = true
			pf.keywords = append(pf.keywords, keyword)
		}
		pf.keywordRules[keyword] = append(pf.keywordRules[keyword], r)
	}

	for _, r := range rules {
		keywords := r.Keywords
		if len(keywords) == 0 && r.Class != "" {
			keywords = []string{jvm.InternalName(r.Class), jvm.CanonicalName(r.Class)}
		}
		if len(keywords) == 0 {
			pf.noKeywordRules = append(pf.noKeywordRules, r)
			continue
		}
		for _, keyword := range keywords {
			add(keyword, r)
		}
	}

	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns the rules that might match className: rules whose
// keywords occur in the name, plus every keywordless rule. The caller
// still runs the real matchers on the survivors.
func (pf *Prefilter) Filter(className string) []*types.Rule {
	result := make([]*types.Rule, 0, len(pf.noKeywordRules))
	result = append(result, pf.noKeywordRules...)

	if pf.matcher == nil {
		return result
	}

	hits := pf.matcher.Match([]byte(className))

	seenRules := make(map[*types.Rule]bool)
	for _, rule := range pf.noKeywordRules {
		seenRules[rule] = true
	}

	for _, hit := range hits {
		keyword := pf.keywords[hit]
		for _, rule := range pf.keywordRules[keyword] {
			if !seenRules[rule] {
				seenRules[rule] = true
				result = append(result, rule)
			}
		}
	}

	return result
}
