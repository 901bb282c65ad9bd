package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// presets carry the options known to suit published design systems
var presets = map[string]Options{
	// Salesforce Lightning Design System
	"slds": {
		SelectorPrefixes: []string{"slds-"},
		BEMSeparators:    []string{"__", "--", "_"},
		TokenPrefixes:    []string{"slds-", "sds-"},
		ExcludeClasses:   []string{"slds-var-", "slds-m-", "slds-p-", "slds-is-", "slds-has-", `slds-r\d`, "slds-no-"},
	},
	// IBM Carbon
	"carbon": {
		SelectorPrefixes: []string{"cds--"},
		BEMSeparators:    []string{"__", "--"},
	},
}

// Preset returns the named preset's options
func Preset(name string) (Options, error) {
	preset, ok := presets[strings.ToLower(name)]
	if !ok {
		return Options{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return Options{
		SelectorPrefixes: slices.Clone(preset.SelectorPrefixes),
		TokenPrefixes:    slices.Clone(preset.TokenPrefixes),
		BEMSeparators:    slices.Clone(preset.BEMSeparators),
		ExcludeClasses:   slices.Clone(preset.ExcludeClasses),
		ExcludeTokens:    slices.Clone(preset.ExcludeTokens),
	}, nil
}

// PresetNames lists the available presets
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
