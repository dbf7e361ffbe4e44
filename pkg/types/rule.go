package types

// Kind selects which matcher shape a rule compiles to.
type Kind string

const (
	// KindAllocations counts constructor invocations of one class.
	KindAllocations Kind = "allocations"

	// KindName counts every overload of one method in one class.
	KindName Kind = "name"

	// KindSignature counts exactly one overload, selected by descriptor.
	KindSignature Kind = "signature"

	// KindRegex counts methods selected by class and method name patterns.
	KindRegex Kind = "regex"
)

// Rule is one counting rule as declared in a rules file. Which fields
// are required depends on Kind; see Validate in pkg/rule.
type Rule struct {
	ID            string // e.g., "cc.collections.arraylist-alloc"
	Name          string // human-readable name
	Kind          Kind
	Class         string   // exact class name (kinds allocations, name, signature)
	Method        string   // exact method name (kinds name, signature)
	Descriptor    string   // method descriptor, e.g. "(I)V" (kind signature)
	ClassPattern  string   // class name regex, internal form (kind regex)
	MethodPattern string   // method name regex (kind regex)
	Keywords      []string // literal class-name fragments for prefiltering
	Description   string   // optional
}

// Ruleset groups rules together by ID.
type Ruleset struct {
	ID          string
	Name        string
	Description string
	RuleIDs     []string
}
