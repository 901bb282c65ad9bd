package css

import "strings"

// TokenType is the coarse category of a design token's literal value
type TokenType string

const (
	TypeColor     TokenType = "color"
	TypeDimension TokenType = "dimension"
	TypeShadow    TokenType = "shadow"
	TypeFont      TokenType = "font"
	TypeOther     TokenType = "other"
)

// classifier is one step of the ordered token classification
type classifier struct {
	tokenType      TokenType
	nameFragments  []string
	valueFragments []string
}

// classifiers are tried in order; the first match wins. Many tokens match
// several steps (a font-size of 1rem is a dimension), so the order is part
// of the contract.
var classifiers = []classifier{
	{TypeColor, []string{"color", "brand"}, []string{"#", "rgb", "hsl", "light-dark"}},
	{TypeDimension, []string{"spacing", "margin", "padding"}, []string{"rem", "px", "em"}},
	{TypeShadow, []string{"shadow"}, []string{"box-shadow", "inset"}},
	{TypeFont, []string{"font", "text"}, []string{"font-family", "font-size"}},
}

// ClassifyToken guesses the type of a token from substrings of its name
// and value, compared case-insensitively
func ClassifyToken(name, value string) TokenType {
	name = strings.ToLower(name)
	value = strings.ToLower(value)

	for _, c := range classifiers {
		if containsAny(name, c.nameFragments) || containsAny(value, c.valueFragments) {
			return c.tokenType
		}
	}
	return TypeOther
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
