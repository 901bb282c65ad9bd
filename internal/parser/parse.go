package parser

import (
	"path/filepath"
	"strings"

	"bennypowers.dev/csstokens/internal/parser/html"
	"bennypowers.dev/csstokens/internal/parser/js"
)

// cssLanguages maps language IDs to the parser category they use.
// "css" → direct CSS, "html" → HTML parser, "js" → JS parser.
var cssLanguages = map[string]string{
	"css":             "css",
	"html":            "html",
	"javascript":      "js",
	"javascriptreact": "js",
	"typescript":      "js",
	"typescriptreact": "js",
}

// scriptDialects maps script language IDs to the grammar that reads them
var scriptDialects = map[string]js.Dialect{
	"javascript":      js.JavaScript,
	"javascriptreact": js.JavaScript,
	"typescript":      js.TypeScript,
	"typescriptreact": js.TSX,
}

// extensionLanguages maps file extensions to language IDs
var extensionLanguages = map[string]string{
	".css":  "css",
	".html": "html",
	".htm":  "html",
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".jsx":  "javascriptreact",
	".ts":   "typescript",
	".mts":  "typescript",
	".cts":  "typescript",
	".tsx":  "typescriptreact",
}

// IsCSSSupportedLanguage returns true if the language supports CSS extraction
func IsCSSSupportedLanguage(languageID string) bool {
	_, ok := cssLanguages[languageID]
	return ok
}

// LanguageForPath returns the language ID for a file path by extension,
// or "" when the file holds no extractable CSS
func LanguageForPath(path string) string {
	return extensionLanguages[strings.ToLower(filepath.Ext(path))]
}

// CSSFromDocument returns the stylesheet text held by a document.
// For CSS files this is the entire content. For HTML/JS files it is the
// extracted style tags, style attributes and css tagged templates joined
// in document order. Unsupported languages yield "".
func CSSFromDocument(content, languageID string) string {
	switch cssLanguages[languageID] {
	case "css":
		return content

	case "html":
		p := html.AcquireParser()
		defer html.ReleaseParser(p)
		return p.ExtractCSS(content)

	case "js":
		p := js.AcquireDialectParser(scriptDialects[languageID])
		defer js.ReleaseParser(p)
		return p.ExtractCSS(content)

	default:
		return ""
	}
}
