package css

// CustomPropertyPrefix is the sigil that starts every custom property name
const CustomPropertyPrefix = "--"

// tree-sitter-css node kinds walked by the parser
const (
	nodeRuleSet        = "rule_set"
	nodeSelectors      = "selectors"
	nodeBlock          = "block"
	nodeDeclaration    = "declaration"
	nodePropertyName   = "property_name"
	nodeImportant      = "important"
	nodeClassSelector  = "class_selector"
	nodeClassName      = "class_name"
	nodeKeyframeBlock  = "keyframe_block"
	nodeCallExpression = "call_expression"
	nodeFunctionName   = "function_name"
	nodeArguments      = "arguments"
	nodeComment        = "comment"
)

// Declaration is a single property: value pair inside a rule
type Declaration struct {
	Property string
	Value    string
}

// ParsedRule is one CSS rule with its selector and declarations.
// Declarations keep source order; a property repeated within the rule
// keeps its first position and takes its last value.
type ParsedRule struct {
	Selector     string
	Declarations []Declaration
}

// Value returns the raw value declared for property in this rule
func (r *ParsedRule) Value(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Properties returns the rule's declarations as a property → value map
func (r *ParsedRule) Properties() map[string]string {
	props := make(map[string]string, len(r.Declarations))
	for _, d := range r.Declarations {
		props[d.Property] = d.Value
	}
	return props
}

func (r *ParsedRule) set(property, value string) {
	for i := range r.Declarations {
		if r.Declarations[i].Property == property {
			r.Declarations[i].Value = value
			return
		}
	}
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// TokenReference records the custom properties referenced via var()
// in the value of one custom property declaration
type TokenReference struct {
	TokenName        string
	ReferencedTokens []string
}
