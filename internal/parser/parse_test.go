package parser_test

import (
	"testing"

	"bennypowers.dev/csstokens/internal/parser"
	"github.com/stretchr/testify/assert"
)

func TestIsCSSSupportedLanguage(t *testing.T) {
	for _, lang := range []string{"css", "html", "javascript", "javascriptreact", "typescript", "typescriptreact"} {
		t.Run(lang, func(t *testing.T) {
			assert.True(t, parser.IsCSSSupportedLanguage(lang))
		})
	}

	for _, lang := range []string{"json", "yaml", "go", ""} {
		t.Run("unsupported_"+lang, func(t *testing.T) {
			assert.False(t, parser.IsCSSSupportedLanguage(lang))
		})
	}
}

func TestLanguageForPath(t *testing.T) {
	tests := map[string]string{
		"styles/main.css":     "css",
		"STYLES/MAIN.CSS":     "css",
		"index.html":          "html",
		"src/button.ts":       "typescript",
		"src/card.tsx":        "typescriptreact",
		"src/element.js":      "javascript",
		"tokens.json":         "",
		"Makefile":            "",
		"components/x.jsx":    "javascriptreact",
		"legacy/page.htm":     "html",
		"lib/styles.mjs":      "javascript",
		"types/declared.d.ts": "typescript",
	}
	for path, want := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, want, parser.LanguageForPath(path))
		})
	}
}

func TestCSSFromDocument(t *testing.T) {
	t.Run("css is returned as is", func(t *testing.T) {
		content := `.button { color: var(--color-primary); }`
		assert.Equal(t, content, parser.CSSFromDocument(content, "css"))
	})

	t.Run("html style tags", func(t *testing.T) {
		content := `<style>.button { color: var(--text-color); }</style>`
		assert.Equal(t, ".button { color: var(--text-color); }", parser.CSSFromDocument(content, "html"))
	})

	t.Run("javascript templates", func(t *testing.T) {
		content := "const s = css`.button { color: var(--text-color); }`;"
		for _, lang := range []string{"javascript", "javascriptreact", "typescript", "typescriptreact"} {
			assert.Equal(t, ".button { color: var(--text-color); }", parser.CSSFromDocument(content, lang), lang)
		}
	})

	t.Run("typescript syntax around templates", func(t *testing.T) {
		content := "interface Props { size: number }\n" +
			"const s: CSSResult = css`.button { gap: var(--gap); }`;\n" +
			"export const t = css<Theme>`.card { margin: var(--gap); }`;"
		css := parser.CSSFromDocument(content, "typescript")
		assert.Contains(t, css, ".button { gap: var(--gap); }")
		assert.Contains(t, css, ".card { margin: var(--gap); }")
	})

	t.Run("tsx", func(t *testing.T) {
		content := "const s = css`.button { gap: var(--gap); }`;\n" +
			"export const Button = (p: Props) => <button class=\"button\">{p.label}</button>;"
		assert.Equal(t, ".button { gap: var(--gap); }", parser.CSSFromDocument(content, "typescriptreact"))
	})

	t.Run("unsupported language", func(t *testing.T) {
		assert.Empty(t, parser.CSSFromDocument("a: b", "yaml"))
	})
}
