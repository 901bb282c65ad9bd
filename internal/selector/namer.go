// Package selector infers component names from class selectors.
//
// Component names are the shortest class-name prefixes that cover groups
// of related classes: "slds-button", "slds-button_brand" and
// "slds-button__icon" all belong to the "slds-button" component.
package selector

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/csstokens/internal/parser/css"
)

// DefaultBEMSeparators separate a BEM block from its element or modifier
var DefaultBEMSeparators = []string{"__", "--"}

// Options configures component inference
type Options struct {
	// SelectorPrefixes restricts inference to classes starting with one of these
	SelectorPrefixes []string
	// BEMSeparators end the block part of a class name; nil means DefaultBEMSeparators
	BEMSeparators []string
	// ExcludeClasses are regular expressions; matching classes are ignored
	ExcludeClasses []string
}

// Namer infers component names once, then resolves selectors against them
type Namer struct {
	prefixes   []string
	separators []string
	exclude    []*regexp.Regexp
	components []string
}

// NewNamer creates a Namer, compiling the exclusion patterns
func NewNamer(opts Options) (*Namer, error) {
	separators := opts.BEMSeparators
	if separators == nil {
		separators = DefaultBEMSeparators
	}

	exclude := make([]*regexp.Regexp, 0, len(opts.ExcludeClasses))
	for _, pattern := range opts.ExcludeClasses {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeClasses pattern %q: %w", pattern, err)
		}
		exclude = append(exclude, re)
	}

	return &Namer{
		prefixes:   longestFirst(opts.SelectorPrefixes),
		separators: longestFirst(separators),
		exclude:    exclude,
	}, nil
}

// longestFirst returns the non-empty values ordered by decreasing length,
// keeping the given order among values of equal length
func longestFirst(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return out
}

// ComponentNames returns the names found by the last InferComponentNames call
func (n *Namer) ComponentNames() []string {
	return slices.Clone(n.components)
}

// InferComponentNames computes the component names covering classNames,
// remembers them for ResolveComponentName, and returns them sorted
func (n *Namer) InferComponentNames(classNames []string) []string {
	normalized := make([]string, 0, len(classNames))
	for _, name := range classNames {
		if !n.accepts(name) {
			continue
		}
		// a class that is all modifier ("--active") names no component
		if base := n.removeModifiers(name); base != "" {
			normalized = append(normalized, base)
		}
	}

	// Byte-wise ordering puts every name directly before the names it prefixes
	slices.Sort(normalized)
	normalized = slices.Compact(normalized)

	n.components = selectBestComponentNames(normalized)
	return n.ComponentNames()
}

// ClassLister splits a selector list into the class names of each selector
type ClassLister interface {
	ClassSelectors(selector string) [][]string
}

// InferFromRules infers component names from the class names of every
// rule's selector
func (n *Namer) InferFromRules(rules []*css.ParsedRule, classes ClassLister) []string {
	var names []string
	for _, rule := range rules {
		for _, list := range classes.ClassSelectors(rule.Selector) {
			names = append(names, list...)
		}
	}
	return n.InferComponentNames(names)
}

// accepts reports whether a class takes part in inference
func (n *Namer) accepts(className string) bool {
	if len(n.prefixes) > 0 && n.matchPrefix(className) == "" {
		return false
	}
	for _, re := range n.exclude {
		if re.MatchString(className) {
			return false
		}
	}
	return true
}

// matchPrefix returns the longest configured prefix of className, or ""
func (n *Namer) matchPrefix(className string) string {
	for _, prefix := range n.prefixes {
		if strings.HasPrefix(className, prefix) {
			return prefix
		}
	}
	return ""
}

// removeModifiers strips BEM elements and modifiers from a class name,
// leaving the prefix in place: "slds-button__icon" → "slds-button"
func (n *Namer) removeModifiers(className string) string {
	prefix := n.matchPrefix(className)
	rest := strings.TrimPrefix(className, prefix)
	for _, sep := range n.separators {
		if i := strings.Index(rest, sep); i >= 0 {
			rest = rest[:i]
		}
	}
	return prefix + rest
}

// selectBestComponentNames keeps the first name of each run of sorted names
// that share it as a prefix:
//
//	[slds-align slds-align-bottom slds-button slds-button-brand] → [slds-align slds-button]
func selectBestComponentNames(sorted []string) []string {
	best := []string{}
	lead := 0
	scan := lead + 1
	for lead < len(sorted) {
		if scan >= len(sorted) || !strings.HasPrefix(sorted[scan], sorted[lead]) {
			best = append(best, sorted[lead])
			lead = scan
			scan = lead + 1
		} else {
			scan++
		}
	}
	return best
}

// ResolveComponentName returns the component owning a selector, given the
// selector's class names in source order. The rightmost class with a
// component prefix decides.
func (n *Namer) ResolveComponentName(classNames []string) (string, bool) {
	for i := len(classNames) - 1; i >= 0; i-- {
		for _, component := range n.components {
			if strings.HasPrefix(classNames[i], component) {
				return component, true
			}
		}
	}
	return "", false
}

// ResolveSelector returns the components owning each selector of a
// selector list, one entry per selector that resolves
func (n *Namer) ResolveSelector(selector string, classes ClassLister) []string {
	var components []string
	for _, list := range classes.ClassSelectors(selector) {
		if component, ok := n.ResolveComponentName(list); ok {
			components = append(components, component)
		}
	}
	return components
}
