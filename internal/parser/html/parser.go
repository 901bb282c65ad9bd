package html

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"
)

// Parser extracts CSS regions from HTML
type Parser struct {
	parser     *sitter.Parser
	styleQuery *sitter.Query
	attrQuery  *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool holds released parsers; it has no New func so ClosePool can
// drain it
var parserPool sync.Pool

func newParser() *Parser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(htmlLang); err != nil {
		panic(fmt.Sprintf("failed to set HTML language: %v", err))
	}

	styleQuery, qerr := sitter.NewQuery(htmlLang, `(style_element (raw_text) @css)`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile style query: %v", qerr))
	}

	attrQuery, qerr := sitter.NewQuery(htmlLang, `
		(attribute
			(attribute_name) @attr_name
			(quoted_attribute_value (attribute_value) @attr_value)
			(#eq? @attr_name "style"))
	`)
	if qerr != nil {
		panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
	}

	return &Parser{
		parser:     parser,
		styleQuery: styleQuery,
		attrQuery:  attrQuery,
	}
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p, ok := parserPool.Get().(*Parser)
	if !ok {
		return newParser()
	}
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
	if p.styleQuery != nil {
		p.styleQuery.Close()
	}
	if p.attrQuery != nil {
		p.attrQuery.Close()
	}
}

// ClosePool closes the parsers waiting in the pool
func ClosePool() {
	for {
		p, ok := parserPool.Get().(*Parser)
		if !ok {
			return
		}
		p.Close()
	}
}

// ParseCSSRegions extracts <style> contents and style="" attribute values,
// style tags first, each group in document order
func (p *Parser) ParseCSSRegions(source string) []CSSRegion {
	sourceBytes := []byte(source)
	tree := p.parser.Parse(sourceBytes, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	var regions []CSSRegion

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.styleQuery, root, sourceBytes)
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, capture := range match.Captures {
			regions = appendRegion(regions, &capture.Node, sourceBytes, StyleTag)
		}
	}

	attrCursor := sitter.NewQueryCursor()
	defer attrCursor.Close()

	attrMatches := attrCursor.Matches(p.attrQuery, root, sourceBytes)
	for match := attrMatches.Next(); match != nil; match = attrMatches.Next() {
		for _, capture := range match.Captures {
			if p.attrQuery.CaptureNames()[capture.Index] != "attr_value" {
				continue
			}
			regions = appendRegion(regions, &capture.Node, sourceBytes, StyleAttribute)
		}
	}

	return regions
}

func appendRegion(regions []CSSRegion, node *sitter.Node, source []byte, kind RegionType) []CSSRegion {
	content := string(source[node.StartByte():node.EndByte()])
	if strings.TrimSpace(content) == "" {
		return regions
	}
	return append(regions, CSSRegion{
		Content:   content,
		StartLine: node.StartPosition().Row,
		Type:      kind,
	})
}

// ExtractCSS returns the document's CSS as a single stylesheet.
// Inline style attributes become rules with StyleAttributeSelector.
func (p *Parser) ExtractCSS(source string) string {
	regions := p.ParseCSSRegions(source)
	sheets := make([]string, 0, len(regions))
	for _, r := range regions {
		sheets = append(sheets, r.Stylesheet())
	}
	return strings.Join(sheets, "\n")
}
