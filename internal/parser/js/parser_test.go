package js_test

import (
	"testing"

	"bennypowers.dev/csstokens/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantCSS  int
		wantHTML int
	}{
		{
			name:    "css tagged template",
			source:  "const styles = css`\n  .button { color: var(--color-primary); }\n`;",
			wantCSS: 1,
		},
		{
			name:     "html tagged template",
			source:   "const tpl = html`<style>.a { color: var(--a); }</style>`;",
			wantHTML: 1,
		},
		{
			name:   "other tags are ignored",
			source: "const q = gql`query { a }`; const s = `plain ${x}`;",
		},
		{
			name:    "generic css tag",
			source:  "const s = css<Theme>`.a { color: red; }`;",
			wantCSS: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := js.AcquireParser()
			defer js.ReleaseParser(parser)

			cssCount := 0
			htmlCount := 0
			for _, tmpl := range parser.ParseTemplates(tt.source) {
				switch tmpl.Tag {
				case "css":
					cssCount++
				case "html":
					htmlCount++
				}
			}

			assert.Equal(t, tt.wantCSS, cssCount, "css template count")
			assert.Equal(t, tt.wantHTML, htmlCount, "html template count")
		})
	}
}

func TestParseTemplatesExpressionSplitting(t *testing.T) {
	source := "const s = css`\n  .a { color: red; }\n  ${otherStyles}\n  .b { color: blue; }\n`;"

	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	templates := parser.ParseTemplates(source)
	require.Len(t, templates, 1)
	assert.Equal(t, "css", templates[0].Tag)
	assert.Len(t, templates[0].Segments, 2, "should split at expression boundary")
}

func TestExtractCSS(t *testing.T) {
	source := "import { css, html } from 'lit';\n" +
		"const styles = css`:root { --gap: 4px; }`;\n" +
		"const tpl = html`<style>.card { margin: var(--gap); }</style>`;\n"

	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	css := parser.ExtractCSS(source)
	assert.Contains(t, css, ":root { --gap: 4px; }")
	assert.Contains(t, css, ".card { margin: var(--gap); }")
}

func TestTypeScriptDialect(t *testing.T) {
	source := "type Size = 'sm' | 'lg';\n" +
		"const styles: CSSResult = css`:root { --gap: 4px; }`;\n" +
		"const themed = css<Theme>`.a { gap: var(--gap); }`;"

	parser := js.AcquireDialectParser(js.TypeScript)
	defer js.ReleaseParser(parser)

	templates := parser.ParseTemplates(source)
	require.Len(t, templates, 2)
	assert.Equal(t, ":root { --gap: 4px; }", templates[0].Text())
	assert.Equal(t, ".a { gap: var(--gap); }", templates[1].Text())
}
