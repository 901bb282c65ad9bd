package css_test

import (
	"testing"

	"bennypowers.dev/csstokens/internal/parser/css"
	"github.com/stretchr/testify/assert"
)

func TestClassifyToken(t *testing.T) {
	tests := []struct {
		name      string
		tokenName string
		value     string
		want      css.TokenType
	}{
		{"color by name", "--brand-color-100", "#fff", css.TypeColor},
		{"color by value", "--surface", "rgb(0 0 0)", css.TypeColor},
		{"light-dark is a color", "--bg", "light-dark(white, black)", css.TypeColor},
		{"uppercase hex", "--Accent", "HSL(10 20% 30%)", css.TypeColor},
		{"dimension by name", "--spacing-04", "1rem", css.TypeDimension},
		{"dimension by unit", "--radius", "4px", css.TypeDimension},
		{"shadow with a length is a dimension", "--shadow-box", "0 0 2px", css.TypeDimension},
		{"shadow by name", "--shadow-none", "none", css.TypeShadow},
		{"shadow by value", "--elevation", "inset", css.TypeShadow},
		{"font by name", "--font-weight-bold", "700", css.TypeFont},
		{"text by name", "--text-transform", "uppercase", css.TypeFont},
		{"font size lengths are dimensions", "--font-size-sm", "0.75rem", css.TypeDimension},
		{"em inside a keyword matches the unit check", "--font-family-base", "system-ui, sans-serif", css.TypeDimension},
		{"color name beats font", "--text-color", "black", css.TypeColor},
		{"other", "--z-index-modal", "9000", css.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, css.ClassifyToken(tt.tokenName, tt.value))
		})
	}

	t.Run("deterministic", func(t *testing.T) {
		for range 10 {
			assert.Equal(t, css.TypeColor, css.ClassifyToken("--brand-color-100", "#fff"))
		}
	})
}
