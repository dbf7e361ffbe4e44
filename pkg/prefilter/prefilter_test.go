package prefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcount/callcount/pkg/types"
)

func TestFilter_ExactClassKeywords(t *testing.T) {
	rules := []*types.Rule{
		{ID: "app.widget-alloc", Kind: types.KindAllocations, Class: "com/app/Widget"},
		{ID: "app.button-alloc", Kind: types.KindAllocations, Class: "com/app/Button"},
	}
	pf := New(rules)

	survivors := pf.Filter("com/app/Widget")
	require.Len(t, survivors, 1)
	assert.Equal(t, "app.widget-alloc", survivors[0].ID)

	assert.Empty(t, pf.Filter("com/other/Thing"))
}

func TestFilter_BothNameForms(t *testing.T) {
	// A rule written in canonical form still prefilters internal-form
	// input, and vice versa.
	pf := New([]*types.Rule{
		{ID: "app.widget-alloc", Kind: types.KindAllocations, Class: "com.app.Widget"},
	})

	assert.Len(t, pf.Filter("com/app/Widget"), 1)
	assert.Len(t, pf.Filter("com.app.Widget"), 1)
}

func TestFilter_DeclaredKeywords(t *testing.T) {
	rules := []*types.Rule{
		{
			ID:            "app.getters",
			Kind:          types.KindRegex,
			ClassPattern:  `com/app/.*`,
			MethodPattern: `get\w+`,
			Keywords:      []string{"com/app"},
		},
	}
	pf := New(rules)

	assert.Len(t, pf.Filter("com/app/Widget"), 1)
	assert.Empty(t, pf.Filter("org/lib/Widget"))
}

func TestFilter_KeywordlessRegexAlwaysChecked(t *testing.T) {
	rules := []*types.Rule{
		{ID: "app.everything", Kind: types.KindRegex, ClassPattern: `.*`, MethodPattern: `.*`},
		{ID: "app.widget-alloc", Kind: types.KindAllocations, Class: "com/app/Widget"},
	}
	pf := New(rules)

	survivors := pf.Filter("org/lib/Unrelated")
	require.Len(t, survivors, 1)
	assert.Equal(t, "app.everything", survivors[0].ID)

	assert.Len(t, pf.Filter("com/app/Widget"), 2)
}

func TestFilter_NoDuplicates(t *testing.T) {
	// A rule with several keywords hitting the same class appears once.
	pf := New([]*types.Rule{
		{
			ID:            "app.collections",
			Kind:          types.KindRegex,
			ClassPattern:  `java/util/.*`,
			MethodPattern: `.*`,
			Keywords:      []string{"java/util", "util"},
		},
	})

	assert.Len(t, pf.Filter("java/util/ArrayList"), 1)
}

func TestFilter_EmptyRules(t *testing.T) {
	pf := New(nil)
	assert.Empty(t, pf.Filter("com/app/Widget"))
}
