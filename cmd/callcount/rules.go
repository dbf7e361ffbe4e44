package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/callcount/callcount/pkg/rule"
	"github.com/callcount/callcount/pkg/types"
)

var (
	rulesPath    string
	outputFormat string
	rulesInclude string
	rulesExclude string
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage counting rules",
	Long:  "Commands for listing and validating counting rules",
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rules",
	Long:  "Display all available counting rules with their IDs, kinds and targets",
	RunE:  runRulesList,
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a rules file",
	Long:  "Check that every rule has the required fields, patterns compile, and descriptors parse",
	RunE:  runRulesValidate,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesValidateCmd)

	rulesListCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to custom rules file")
	rulesListCmd.Flags().StringVar(&outputFormat, "format", "table", "Output format: table, json")

	rulesValidateCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to custom rules file")
	rulesValidateCmd.Flags().StringVar(&rulesInclude, "include", "", "Comma-separated rule ID patterns to include")
	rulesValidateCmd.Flags().StringVar(&rulesExclude, "exclude", "", "Comma-separated rule ID patterns to exclude")
}

func runRulesList(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json":
		return outputRulesJSON(cmd, rules)
	case "table":
		return outputRulesTable(cmd, rules)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

func runRulesValidate(cmd *cobra.Command, args []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	rules, err = rule.Filter(rules, rule.FilterConfig{
		Include: rule.ParsePatterns(rulesInclude),
		Exclude: rule.ParsePatterns(rulesExclude),
	})
	if err != nil {
		return err
	}

	if err := rule.ValidateRules(rules); err != nil {
		return err
	}
	if _, err := rule.Compile(rules); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d rules valid\n", len(rules))
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func loadRules() ([]*types.Rule, error) {
	loader := rule.NewLoader()

	if rulesPath != "" {
		rules, err := loader.LoadRuleFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("loading rules from %s: %w", rulesPath, err)
		}
		return rules, nil
	}

	rules, err := loader.LoadBuiltinRules()
	if err != nil {
		return nil, fmt.Errorf("loading builtin rules: %w", err)
	}
	return rules, nil
}

func outputRulesJSON(cmd *cobra.Command, rules []*types.Rule) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(rules)
}

func outputRulesTable(cmd *cobra.Command, rules []*types.Rule) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tKind\tTarget\n")
	fmt.Fprintf(w, "--\t----\t------\n")

	for _, r := range rules {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Kind, ruleTarget(r))
	}

	return nil
}

// ruleTarget renders the class/method selection of a rule in one cell.
func ruleTarget(r *types.Rule) string {
	switch r.Kind {
	case types.KindAllocations:
		return r.Class + ".<init>"
	case types.KindName:
		return r.Class + "." + r.Method
	case types.KindSignature:
		return r.Class + "." + r.Method + r.Descriptor
	case types.KindRegex:
		return r.ClassPattern + " / " + r.MethodPattern
	}
	return ""
}
