package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/callcount/callcount/pkg/types"
)

func validRule() *types.Rule {
	return &types.Rule{
		ID:    "app.widget-alloc",
		Name:  "Widget allocations",
		Kind:  types.KindAllocations,
		Class: "com/app/Widget",
	}
}

func TestValidateRule(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Rule)
		wantErr string
	}{
		{
			name:   "valid allocations rule",
			mutate: func(r *types.Rule) {},
		},
		{
			name: "valid name rule",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindName
				r.Method = "render"
			},
		},
		{
			name: "valid signature rule",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindSignature
				r.Method = "render"
				r.Descriptor = "(I)V"
			},
		},
		{
			name: "valid regex rule",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindRegex
				r.Class = ""
				r.ClassPattern = `com/app/.*`
				r.MethodPattern = `render`
			},
		},
		{
			name:    "missing ID",
			mutate:  func(r *types.Rule) { r.ID = "" },
			wantErr: "rule ID is required",
		},
		{
			name:    "missing name",
			mutate:  func(r *types.Rule) { r.Name = "" },
			wantErr: "rule name is required",
		},
		{
			name:    "missing kind",
			mutate:  func(r *types.Rule) { r.Kind = "" },
			wantErr: "kind is required",
		},
		{
			name:    "unknown kind",
			mutate:  func(r *types.Rule) { r.Kind = "fuzzy" },
			wantErr: `unknown kind "fuzzy"`,
		},
		{
			name:    "allocations rule without class",
			mutate:  func(r *types.Rule) { r.Class = "" },
			wantErr: "requires class",
		},
		{
			name: "allocations rule with method",
			mutate: func(r *types.Rule) {
				r.Method = "<init>"
			},
			wantErr: "must not set method",
		},
		{
			name: "name rule without method",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindName
			},
			wantErr: "requires class and method",
		},
		{
			name: "signature rule with bad descriptor",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindSignature
				r.Method = "render"
				r.Descriptor = "(Q)V"
			},
			wantErr: "unknown type code",
		},
		{
			name: "regex rule with invalid class pattern",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindRegex
				r.Class = ""
				r.ClassPattern = `com/app/(`
				r.MethodPattern = `render`
			},
			wantErr: "class pattern",
		},
		{
			name: "regex rule with invalid method pattern",
			mutate: func(r *types.Rule) {
				r.Kind = types.KindRegex
				r.Class = ""
				r.ClassPattern = `com/app/.*`
				r.MethodPattern = `render[`
			},
			wantErr: "method pattern",
		},
		{
			name: "pattern on non-regex rule",
			mutate: func(r *types.Rule) {
				r.ClassPattern = `com/.*`
			},
			wantErr: "only apply to kind regex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRule()
			tt.mutate(r)
			err := ValidateRule(r)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRule_Nil(t *testing.T) {
	assert.ErrorContains(t, ValidateRule(nil), "rule is nil")
}

func TestValidateRules_DuplicateID(t *testing.T) {
	a := validRule()
	b := validRule()
	assert.ErrorContains(t, ValidateRules([]*types.Rule{a, b}), "duplicate rule ID")
}

func TestValidateRuleset(t *testing.T) {
	known := map[string]bool{"app.a": true, "app.b": true}

	rs := &types.Ruleset{ID: "app.set", Name: "Set", RuleIDs: []string{"app.a", "app.b"}}
	assert.NoError(t, ValidateRuleset(rs, known))

	rs = &types.Ruleset{ID: "app.set", Name: "Set", RuleIDs: []string{"app.missing"}}
	assert.ErrorContains(t, ValidateRuleset(rs, known), "unknown rule ID")

	rs = &types.Ruleset{ID: "app.set", Name: "Set", RuleIDs: []string{"app.a", "app.a"}}
	assert.ErrorContains(t, ValidateRuleset(rs, known), "duplicate rule ID")

	rs = &types.Ruleset{ID: "app.set", Name: "Set"}
	assert.ErrorContains(t, ValidateRuleset(rs, nil), "at least one rule")
}
