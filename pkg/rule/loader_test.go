package rule

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcount/callcount/pkg/types"
)

const sampleRulesYAML = `
rules:
  - id: app.widget-alloc
    name: Widget allocations
    kind: allocations
    class: com/app/Widget

  - id: app.widget-render
    name: Widget render calls
    kind: signature
    class: com.app.Widget
    method: render
    descriptor: (I)V

  - id: app.getters
    name: Getter calls
    kind: regex
    class_pattern: com/app/.*
    method_pattern: get\w+
    keywords:
      - com/app
`

func TestLoadRules(t *testing.T) {
	loader := NewLoader()

	rules, err := loader.LoadRules([]byte(sampleRulesYAML))
	require.NoError(t, err)
	require.Len(t, rules, 3)

	assert.Equal(t, "app.widget-alloc", rules[0].ID)
	assert.Equal(t, types.KindAllocations, rules[0].Kind)
	assert.Equal(t, "com/app/Widget", rules[0].Class)

	assert.Equal(t, types.KindSignature, rules[1].Kind)
	assert.Equal(t, "(I)V", rules[1].Descriptor)

	assert.Equal(t, types.KindRegex, rules[2].Kind)
	assert.Equal(t, `get\w+`, rules[2].MethodPattern)
	assert.Equal(t, []string{"com/app"}, rules[2].Keywords)
}

func TestLoadRules_Errors(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadRules([]byte("rules: []"))
	assert.ErrorContains(t, err, "no rules found")

	_, err = loader.LoadRules([]byte("{not yaml"))
	assert.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoadRuleset(t *testing.T) {
	loader := NewLoader()

	rs, err := loader.LoadRuleset([]byte(`
rulesets:
  - id: app.hot-paths
    name: Hot paths
    include_rule_ids:
      - app.widget-alloc
      - app.widget-render
`))
	require.NoError(t, err)
	assert.Equal(t, "app.hot-paths", rs.ID)
	assert.Equal(t, []string{"app.widget-alloc", "app.widget-render"}, rs.RuleIDs)
}

func TestLoadRuleset_RejectsMultiple(t *testing.T) {
	loader := NewLoader()

	_, err := loader.LoadRuleset([]byte(`
rulesets:
  - id: a
    name: A
    include_rule_ids: [x]
  - id: b
    name: B
    include_rule_ids: [y]
`))
	assert.ErrorContains(t, err, "expected single ruleset")
}

func TestLoadBuiltinRules(t *testing.T) {
	loader := NewLoader()

	rules, err := loader.LoadBuiltinRules()
	require.NoError(t, err)
	assert.NotEmpty(t, rules)

	// Every builtin rule must validate and compile.
	require.NoError(t, ValidateRules(rules))
	_, err = Compile(rules)
	require.NoError(t, err)
}

func TestLoadBuiltinRulesets(t *testing.T) {
	loader := NewLoader()

	rules, err := loader.LoadBuiltinRules()
	require.NoError(t, err)
	ids := make(map[string]bool, len(rules))
	for _, r := range rules {
		ids[r.ID] = true
	}

	rulesets, err := loader.LoadBuiltinRulesets()
	require.NoError(t, err)
	require.NotEmpty(t, rulesets)

	for _, rs := range rulesets {
		assert.NoError(t, ValidateRuleset(rs, ids))
	}
}

func TestLoaderWithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"rules/custom.yml": &fstest.MapFile{Data: []byte(`
rules:
  - id: custom.rule
    name: Custom
    kind: allocations
    class: com/app/Widget
`)},
	}

	loader := NewLoaderWithFS(fsys)
	rules, err := loader.LoadBuiltinRules()
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "custom.rule", rules[0].ID)
}
