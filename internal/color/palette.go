// Package color lists the color tokens of an extraction result.
package color

import (
	"fmt"
	"strings"

	"bennypowers.dev/csstokens/internal/log"
	"bennypowers.dev/csstokens/internal/parser/css"
	"bennypowers.dev/csstokens/internal/resolver"
	"bennypowers.dev/csstokens/internal/tokens"
	"github.com/mazznoer/csscolorparser"
)

// Swatch is a token whose value is a single CSS color
type Swatch struct {
	Token string `json:"token"`
	// Value is the declared value, or the aliased token's value
	Value string `json:"value"`
	// Hex is the normalised #rrggbb or #rrggbbaa form
	Hex string `json:"hex"`
	// Alias is set when the token reaches its color through var() references
	Alias bool `json:"alias,omitempty"`
}

// ToHex normalises a CSS color
func ToHex(value string) (string, error) {
	parsed, err := csscolorparser.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("unsupported color format: %s", value)
	}
	return parsed.HexString(), nil
}

// Palette returns the color swatches of output in output order.
//
// Literal tokens count when classified as colors and their value parses
// as one color. Alias tokens count when their chain of single var()
// references ends in such a literal. A reference cycle disables alias
// resolution with a warning.
func Palette(output *tokens.TokenOutput) []Swatch {
	literals := make(map[string]string)
	for name, token := range output.All() {
		if !token.IsReference() && token.Type == css.TypeColor {
			literals[name] = token.Value
		}
	}

	resolved, err := resolver.ResolveAliases(resolver.BuildDependencyGraph(output.References()), literals)
	if err != nil {
		log.Warn("Skipping color aliases: %v", err)
		resolved = literals
	}

	swatches := []Swatch{}
	for name, token := range output.All() {
		value, ok := resolved[name]
		if !ok {
			continue
		}
		hex, err := ToHex(value)
		if err != nil {
			log.Debug("Token %s is not a single color: %v", name, err)
			continue
		}
		swatches = append(swatches, Swatch{
			Token: name,
			Value: value,
			Hex:   hex,
			Alias: token.IsReference(),
		})
	}
	return swatches
}
