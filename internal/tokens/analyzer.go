// Package tokens joins parsed CSS, component inference and the reference
// graph into design token output.
package tokens

import (
	"bennypowers.dev/csstokens/internal/collections"
	"bennypowers.dev/csstokens/internal/config"
	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/parser/css"
	"bennypowers.dev/csstokens/internal/resolver"
	"bennypowers.dev/csstokens/internal/selector"
)

// Analyzer extracts design tokens from stylesheets.
// An Analyzer is not safe for concurrent use.
type Analyzer struct {
	namer  *selector.Namer
	filter *config.TokenFilter
}

// NewAnalyzer creates an Analyzer. It fails when a pattern in opts does
// not compile.
func NewAnalyzer(opts config.Options) (*Analyzer, error) {
	namer, err := selector.NewNamer(opts.SelectorOptions())
	if err != nil {
		return nil, err
	}
	filter, err := opts.TokenFilter()
	if err != nil {
		return nil, err
	}
	return &Analyzer{namer: namer, filter: filter}, nil
}

// ComponentNames returns the components inferred by the last Analyze call
func (a *Analyzer) ComponentNames() []string {
	return a.namer.ComponentNames()
}

// Analyze extracts every custom property declared in source.
//
// A token whose first referencing declaration holds var() references gets
// RefersTo; any other token gets its last declared Value and a Type.
// UsedIn holds the components of the rules whose values reference the token.
func (a *Analyzer) Analyze(source string) *TokenOutput {
	p := css.AcquireParser()
	defer css.ReleaseParser(p)

	rules := p.ParseRules(source)
	properties := css.ExtractCustomProperties(rules)
	references := firstReferences(p.ExtractReferences(source))
	components := a.namer.InferFromRules(rules, p)
	usage := p.UsageIndex(rules)

	log.Debug("Found %d rules, %d custom properties, %d components", len(rules), properties.Len(), len(components))

	output := NewTokenOutput()
	for pair := properties.Oldest(); pair != nil; pair = pair.Next() {
		name, value := pair.Key, pair.Value
		if !a.filter.Includes(name) {
			continue
		}

		token := &DesignToken{}
		if refs, ok := references[name]; ok {
			token.RefersTo = refs
		} else {
			token.Value = value
			token.Type = css.ClassifyToken(name, value)
		}
		token.UsedIn = a.usedIn(p, usage[name])

		output.Set(name, token)
	}

	return output
}

// firstReferences keeps the first reference entry of each token
func firstReferences(refs []css.TokenReference) map[string][]string {
	first := make(map[string][]string, len(refs))
	for _, ref := range refs {
		if _, ok := first[ref.TokenName]; !ok && len(ref.ReferencedTokens) > 0 {
			first[ref.TokenName] = ref.ReferencedTokens
		}
	}
	return first
}

// usedIn resolves the components of the given rules, sorted and unique.
// It returns nil when no rule resolves.
func (a *Analyzer) usedIn(p *css.Parser, rules []*css.ParsedRule) []string {
	components := collections.NewSet[string]()
	for _, rule := range rules {
		for _, component := range a.namer.ResolveSelector(rule.Selector, p) {
			components.Add(component)
		}
	}
	if components.Len() == 0 {
		return nil
	}
	return collections.Sorted(components)
}

// AnalyzeTokenDependencies builds the var() reference graph of source
func (a *Analyzer) AnalyzeTokenDependencies(source string) *resolver.DependencyGraph {
	p := css.AcquireParser()
	defer css.ReleaseParser(p)

	return resolver.BuildDependencyGraph(p.ExtractReferences(source))
}

// FindCircularDependencies returns the reference cycles of source, each
// starting and ending with the same token
func (a *Analyzer) FindCircularDependencies(source string) [][]string {
	return a.AnalyzeTokenDependencies(source).FindCycles()
}
