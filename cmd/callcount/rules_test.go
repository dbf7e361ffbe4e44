package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRulesList(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Reset flags for test
	rulesPath = ""
	outputFormat = "table"

	err := runRulesList(cmd, []string{})
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Kind")
	assert.Contains(t, output, "cc.jdk.arraylist-alloc")
	assert.Contains(t, output, "java/util/ArrayList.<init>")
}

func TestRunRulesListJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	rulesPath = ""
	outputFormat = "json"

	err := runRulesList(cmd, []string{})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotEmpty(t, decoded)
}

func TestRunRulesList_UnknownFormat(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	rulesPath = ""
	outputFormat = "xml"

	err := runRulesList(cmd, []string{})
	assert.ErrorContains(t, err, "unknown output format")
}

func TestRunRulesValidate(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	rulesPath = ""
	rulesInclude = ""
	rulesExclude = ""
	quiet = false

	err := runRulesValidate(cmd, []string{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rules valid")
}

func TestRunRulesValidate_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
rules:
  - id: app.bad
    name: Bad descriptor
    kind: signature
    class: com/app/Widget
    method: render
    descriptor: (QQ)V
`), 0o644))

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	rulesPath = path
	rulesInclude = ""
	rulesExclude = ""

	err := runRulesValidate(cmd, []string{})
	assert.ErrorContains(t, err, "unknown type code")
}

func TestRunRulesValidate_MissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	rulesPath = "/nonexistent/rules.yml"

	err := runRulesValidate(cmd, []string{})
	assert.ErrorContains(t, err, "loading rules")
}
