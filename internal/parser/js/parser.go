package js

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/csstokens/internal/log"
	htmlparser "bennypowers.dev/csstokens/internal/parser/html"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Dialect selects the grammar a Parser reads scripts with
type Dialect int

const (
	// JavaScript covers plain JS and JSX
	JavaScript Dialect = iota
	TypeScript
	TSX
)

// Parser extracts CSS from css`` and html`` tagged template literals in JS/TS
type Parser struct {
	dialect       Dialect
	parser        *sitter.Parser
	templateQuery *sitter.Query
	genericQuery  *sitter.Query // matches css<Type>`...` (parsed by the JS grammar as binary_expression)
}

var languages = map[Dialect]*sitter.Language{
	JavaScript: sitter.NewLanguage(tree_sitter_javascript.Language()),
	TypeScript: sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
	TSX:        sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
}

// parserPools hold released parsers, one pool per dialect. They have no
// New func so ClosePool can drain them.
var parserPools = map[Dialect]*sync.Pool{
	JavaScript: {},
	TypeScript: {},
	TSX:        {},
}

func newParser(dialect Dialect) *Parser {
	lang := languages[dialect]
	parser := sitter.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		panic(fmt.Sprintf("failed to set script language: %v", err))
	}

	templateQuery, qerr := sitter.NewQuery(lang, `
		(call_expression
			function: (identifier) @tag
			arguments: (template_string) @template)
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile template query: %v", qerr))
	}

	// css<Type>`...` is valid TypeScript, but the JS grammar reads it
	// as two nested binary expressions. The TypeScript grammars
	// produce a call_expression with type arguments instead.
	genericQuery, qerr := sitter.NewQuery(lang, `
		(binary_expression
			left: (binary_expression
				left: (identifier) @tag)
			right: (template_string) @template)
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile generic query: %v", qerr))
	}

	return &Parser{
		dialect:       dialect,
		parser:        parser,
		templateQuery: templateQuery,
		genericQuery:  genericQuery,
	}
}

// AcquireParser gets a JavaScript parser from the pool
func AcquireParser() *Parser {
	return AcquireDialectParser(JavaScript)
}

// AcquireDialectParser gets a parser for dialect from the pool
func AcquireDialectParser(dialect Dialect) *Parser {
	pool, ok := parserPools[dialect]
	if !ok {
		dialect, pool = JavaScript, parserPools[JavaScript]
	}
	p, ok := pool.Get().(*Parser)
	if !ok {
		return newParser(dialect)
	}
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPools[p.dialect].Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.templateQuery != nil {
		p.templateQuery.Close()
	}
	if p.genericQuery != nil {
		p.genericQuery.Close()
	}
}

// ClosePool closes the parsers waiting in the pools
func ClosePool() {
	for _, pool := range parserPools {
		for {
			p, ok := pool.Get().(*Parser)
			if !ok {
				break
			}
			p.Close()
		}
	}
}

// ParseTemplates finds css/html tagged template literals and splits them at ${...} boundaries
func (p *Parser) ParseTemplates(source string) []TemplateRegion {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	var regions []TemplateRegion
	for _, query := range []*sitter.Query{p.templateQuery, p.genericQuery} {
		regions = p.runTemplateQuery(query, root, sourceBytes, regions)
	}
	return regions
}

func (p *Parser) runTemplateQuery(query *sitter.Query, root *sitter.Node, sourceBytes []byte, regions []TemplateRegion) []TemplateRegion {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(query, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var tagName string
		var templateNode sitter.Node
		foundTemplate := false

		for _, capture := range match.Captures {
			switch query.CaptureNames()[capture.Index] {
			case "tag":
				tagName = string(sourceBytes[capture.Node.StartByte():capture.Node.EndByte()])
			case "template":
				templateNode = capture.Node
				foundTemplate = true
			}
		}

		if !foundTemplate || (tagName != "css" && tagName != "html") {
			continue
		}

		if segments := extractSegments(&templateNode, sourceBytes); len(segments) > 0 {
			regions = append(regions, TemplateRegion{Segments: segments, Tag: tagName})
		}
	}
	return regions
}

// extractSegments returns the string_fragment children of a template_string
func extractSegments(templateNode *sitter.Node, sourceBytes []byte) []Segment {
	var segments []Segment
	for i := uint(0); i < templateNode.ChildCount(); i++ {
		child := templateNode.Child(i)
		if child.Kind() == "string_fragment" {
			segments = append(segments, Segment{
				Content:   string(sourceBytes[child.StartByte():child.EndByte()]),
				StartLine: child.StartPosition().Row,
			})
		}
	}
	return segments
}

// ExtractCSS returns the CSS of all css`` templates, plus the style
// regions of html`` templates, as one stylesheet in source order
func (p *Parser) ExtractCSS(source string) string {
	var sheets []string
	for _, tmpl := range p.ParseTemplates(source) {
		switch tmpl.Tag {
		case "css":
			sheets = append(sheets, tmpl.Text())
		case "html":
			sheets = append(sheets, htmlTemplateCSS(tmpl)...)
		}
	}
	return strings.Join(sheets, "\n")
}

func htmlTemplateCSS(tmpl TemplateRegion) []string {
	htmlParser := htmlparser.AcquireParser()
	defer htmlparser.ReleaseParser(htmlParser)

	var sheets []string
	for _, seg := range tmpl.Segments {
		regions := htmlParser.ParseCSSRegions(seg.Content)
		if len(regions) == 0 {
			continue
		}
		log.Debug("Found %d CSS regions in html template at line %d", len(regions), seg.StartLine+1)
		for _, r := range regions {
			sheets = append(sheets, r.Stylesheet())
		}
	}
	return sheets
}
