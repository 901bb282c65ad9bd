package css

import (
	"slices"
	"strings"

	"bennypowers.dev/csstokens/internal/collections"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ExtractCustomProperties returns every custom property declared in rules,
// keyed by name in order of first declaration. When a property is declared
// more than once the last value in rule order wins.
func ExtractCustomProperties(rules []*ParsedRule) *orderedmap.OrderedMap[string, string] {
	tokens := orderedmap.New[string, string]()
	for _, rule := range rules {
		for _, d := range rule.Declarations {
			if strings.HasPrefix(d.Property, CustomPropertyPrefix) {
				tokens.Set(d.Property, d.Value)
			}
		}
	}
	return tokens
}

// FindUsage returns the rules with at least one property value referencing
// tokenName through var()
func (p *Parser) FindUsage(rules []*ParsedRule, tokenName string) []*ParsedRule {
	using := []*ParsedRule{}
	for _, rule := range rules {
		for _, d := range rule.Declarations {
			if slices.Contains(p.VarReferences(d.Value), tokenName) {
				using = append(using, rule)
				break
			}
		}
	}
	return using
}

// UsageIndex maps every referenced token to the rules that reference it,
// exactly as FindUsage would report them, in a single pass over rules
func (p *Parser) UsageIndex(rules []*ParsedRule) map[string][]*ParsedRule {
	index := map[string][]*ParsedRule{}
	for _, rule := range rules {
		seen := collections.NewSet[string]()
		for _, d := range rule.Declarations {
			for _, ref := range p.VarReferences(d.Value) {
				if seen.Has(ref) {
					continue
				}
				seen.Add(ref)
				index[ref] = append(index[ref], rule)
			}
		}
	}
	return index
}
