// Package config holds the extraction options and loads them from
// configuration files.
package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"bennypowers.dev/csstokens/internal/selector"
)

// Options controls component inference and token selection.
// Every field is optional.
type Options struct {
	// SelectorPrefixes restricts component inference to classes starting with one of these
	SelectorPrefixes []string `json:"selectorPrefixes,omitempty" yaml:"selectorPrefixes,omitempty"`

	// TokenPrefixes restricts the output to tokens whose names, without the
	// leading "--", start with one of these
	TokenPrefixes []string `json:"tokenPrefixes,omitempty" yaml:"tokenPrefixes,omitempty"`

	// BEMSeparators end the block part of a class name
	// Default: ["__", "--"]
	BEMSeparators []string `json:"bemSeparators,omitempty" yaml:"bemSeparators,omitempty"`

	// ExcludeClasses are regular expressions for classes ignored by component inference
	ExcludeClasses []string `json:"excludeClasses,omitempty" yaml:"excludeClasses,omitempty"`

	// ExcludeTokens are regular expressions for tokens dropped from the output
	ExcludeTokens []string `json:"excludeTokens,omitempty" yaml:"excludeTokens,omitempty"`
}

// Default returns the default options
func Default() Options {
	return Options{
		BEMSeparators: slices.Clone(selector.DefaultBEMSeparators),
	}
}

// Merge returns o with every field that is set in override replaced
func (o Options) Merge(override Options) Options {
	if override.SelectorPrefixes != nil {
		o.SelectorPrefixes = override.SelectorPrefixes
	}
	if override.TokenPrefixes != nil {
		o.TokenPrefixes = override.TokenPrefixes
	}
	if override.BEMSeparators != nil {
		o.BEMSeparators = override.BEMSeparators
	}
	if override.ExcludeClasses != nil {
		o.ExcludeClasses = override.ExcludeClasses
	}
	if override.ExcludeTokens != nil {
		o.ExcludeTokens = override.ExcludeTokens
	}
	return o
}

// SelectorOptions returns the component inference subset of the options
func (o Options) SelectorOptions() selector.Options {
	return selector.Options{
		SelectorPrefixes: o.SelectorPrefixes,
		BEMSeparators:    o.BEMSeparators,
		ExcludeClasses:   o.ExcludeClasses,
	}
}

// TokenFilter decides which custom properties appear in the output
type TokenFilter struct {
	prefixes []string
	exclude  []*regexp.Regexp
}

// TokenFilter compiles the token selection options
func (o Options) TokenFilter() (*TokenFilter, error) {
	filter := &TokenFilter{}
	for _, prefix := range o.TokenPrefixes {
		// accept both "ds-" and "--ds-"
		if prefix = strings.TrimPrefix(prefix, "--"); prefix != "" {
			filter.prefixes = append(filter.prefixes, prefix)
		}
	}
	for _, pattern := range o.ExcludeTokens {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeTokens pattern %q: %w", pattern, err)
		}
		filter.exclude = append(filter.exclude, re)
	}
	return filter, nil
}

// Includes reports whether a token belongs in the output
func (f *TokenFilter) Includes(tokenName string) bool {
	if len(f.prefixes) > 0 {
		name := strings.TrimPrefix(tokenName, "--")
		if !slices.ContainsFunc(f.prefixes, func(prefix string) bool {
			return strings.HasPrefix(name, prefix)
		}) {
			return false
		}
	}
	for _, re := range f.exclude {
		if re.MatchString(tokenName) {
			return false
		}
	}
	return true
}

// Validate reports the first invalid regular expression in the options
func (o Options) Validate() error {
	if _, err := selector.NewNamer(o.SelectorOptions()); err != nil {
		return err
	}
	_, err := o.TokenFilter()
	return err
}
