package rule

// yamlRule is the intermediate struct for parsing the YAML rule format.
// Maps YAML fields to the types.Rule structure.
type yamlRule struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Kind          string   `yaml:"kind"`
	Class         string   `yaml:"class,omitempty"`
	Method        string   `yaml:"method,omitempty"`
	Descriptor    string   `yaml:"descriptor,omitempty"`
	ClassPattern  string   `yaml:"class_pattern,omitempty"`
	MethodPattern string   `yaml:"method_pattern,omitempty"`
	Keywords      []string `yaml:"keywords,omitempty"`
	Description   string   `yaml:"description,omitempty"`
}

// yamlRulesFile represents the top-level structure of a rules YAML file:
// a "rules" array.
type yamlRulesFile struct {
	Rules []yamlRule `yaml:"rules"`
}

// yamlRuleset is the intermediate struct for parsing the YAML ruleset
// format.
type yamlRuleset struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	RuleIDs     []string `yaml:"include_rule_ids"`
}

// yamlRulesetsFile represents the top-level structure of a rulesets YAML
// file.
type yamlRulesetsFile struct {
	Rulesets []yamlRuleset `yaml:"rulesets"`
}
