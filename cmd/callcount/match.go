package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/callcount/callcount"
	"github.com/callcount/callcount/pkg/jvm"
)

var (
	matchRulesPath     string
	matchNoColor       bool
	matchInternalNames bool
)

// matchStyles holds color formatters for match verdicts.
type matchStyles struct {
	hit    *color.Color
	miss   *color.Color
	ruleID *color.Color
}

// newMatchStyles creates color formatters for match output.
// enabled=false respects --no-color.
func newMatchStyles(enabled bool) *matchStyles {
	s := &matchStyles{
		hit:    color.New(color.Bold, color.FgHiGreen),
		miss:   color.New(color.FgHiBlack),
		ruleID: color.New(color.FgHiBlue),
	}

	if !enabled {
		s.hit.DisableColor()
		s.miss.DisableColor()
		s.ruleID.DisableColor()
	}

	return s
}

var matchCmd = &cobra.Command{
	Use:   "match <class> <method> [descriptor]",
	Short: "Evaluate rules against one invocation",
	Long: `Evaluate every rule against a (class, method, descriptor) triple, the same
way the instrumentation agent does: class check first, then the method check
for rules whose class matched.

Names are compared verbatim. Pass --internal-names to convert a
dot-separated class name to the internal slash form before matching.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchRulesPath, "rules", "", "Path to custom rules file")
	matchCmd.Flags().BoolVar(&matchNoColor, "no-color", false, "Disable colored output")
	matchCmd.Flags().BoolVar(&matchInternalNames, "internal-names", false, "Normalize the class name to internal slash form")
}

func runMatch(cmd *cobra.Command, args []string) error {
	className := args[0]
	methodName := args[1]
	descriptor := ""
	if len(args) == 3 {
		descriptor = args[2]
		if !jvm.ValidMethodDescriptor(descriptor) {
			return fmt.Errorf("invalid method descriptor: %s", descriptor)
		}
	}

	if matchInternalNames {
		className = jvm.InternalName(className)
	}

	opts := []callcount.Option{}
	if matchRulesPath != "" {
		opts = append(opts, callcount.WithRuleFile(matchRulesPath))
	}
	profile, err := callcount.NewProfile(opts...)
	if err != nil {
		return err
	}

	styles := newMatchStyles(!matchNoColor)
	out := cmd.OutOrStdout()

	hits := 0
	for _, c := range profile.MatchersForClass(className) {
		if !c.Matcher.MethodMatches(methodName, descriptor) {
			if verbose {
				fmt.Fprintf(out, "%s  %s (class only)\n",
					styles.miss.Sprint("miss"), styles.ruleID.Sprint(c.Rule.ID))
			}
			continue
		}
		hits++
		fmt.Fprintf(out, "%s %s  %s\n",
			styles.hit.Sprint("MATCH"), styles.ruleID.Sprint(c.Rule.ID), c.Rule.Name)
	}

	if hits == 0 && !quiet {
		fmt.Fprintf(out, "no rules match %s.%s%s\n", className, methodName, descriptor)
	}
	return nil
}
