package css

import (
	"fmt"
	"strings"
	"sync"

	"bennypowers.dev/csstokens/internal/log"
	lru "github.com/hashicorp/golang-lru/v2"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"
)

// memoSize bounds the per-parser value and selector memos
const memoSize = 8192

// Parser walks CSS with tree-sitter.
// A Parser is not safe for concurrent use; acquire one per goroutine.
type Parser struct {
	parser *sitter.Parser
	// value text -> var() references found by a value-level parse
	values *lru.Cache[string, []string]
	// selector list text -> class names per selector
	selectors *lru.Cache[string, [][]string]
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool holds released parsers. It has no New func, so ClosePool
// can drain it without creating parsers.
var parserPool sync.Pool

func newParser() *Parser {
	parser := sitter.NewParser()
	if err := parser.SetLanguage(cssLang); err != nil {
		panic(fmt.Sprintf("failed to set CSS language: %v", err))
	}

	values, err := lru.New[string, []string](memoSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create value memo: %v", err))
	}
	selectors, err := lru.New[string, [][]string](memoSize)
	if err != nil {
		panic(fmt.Sprintf("failed to create selector memo: %v", err))
	}

	return &Parser{
		parser:    parser,
		values:    values,
		selectors: selectors,
	}
}

// AcquireParser gets a parser from the pool, or creates one.
// The parser's memos start empty.
func AcquireParser() *Parser {
	p, ok := parserPool.Get().(*Parser)
	if !ok {
		return newParser()
	}
	p.parser.Reset()
	p.values.Purge()
	p.selectors.Purge()
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

// ParseRules parses a stylesheet and returns one ParsedRule per rule set
// and per @keyframes block, in source order. Rules nested in at-rules or
// in other rules are included. A rule whose selector does not parse is
// skipped with a warning.
func (p *Parser) ParseRules(source string) []*ParsedRule {
	src := []byte(source)
	rules := []*ParsedRule{}

	tree := p.parser.Parse(maskBraceValues(src), nil)
	if tree == nil {
		log.Warn("Failed to parse CSS: no syntax tree produced")
		return rules
	}
	defer tree.Close()

	walk(tree.RootNode(), func(node *sitter.Node) bool {
		switch node.Kind() {
		case nodeRuleSet:
			if rule := parseRuleSet(node, src); rule != nil {
				rules = append(rules, rule)
			}
		case nodeKeyframeBlock:
			if rule := parseKeyframeBlock(node, src); rule != nil {
				rules = append(rules, rule)
			}
		}
		return true
	})

	return rules
}

// parseRuleSet builds a rule from a rule_set node
func parseRuleSet(node *sitter.Node, src []byte) *ParsedRule {
	var selectors, block *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case nodeSelectors:
			selectors = child
		case nodeBlock:
			block = child
		}
	}

	if selectors == nil || selectors.HasError() {
		log.Warn("Skipping rule with malformed selector at line %d", node.StartPosition().Row+1)
		return nil
	}

	rule := &ParsedRule{Selector: normalizeSpace(selectors.Utf8Text(src))}
	addBlockDeclarations(rule, block, src)
	return rule
}

// parseKeyframeBlock builds a rule from a keyframe block such as `from { ... }`
func parseKeyframeBlock(node *sitter.Node, src []byte) *ParsedRule {
	var block *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		if child := node.Child(i); child.Kind() == nodeBlock {
			block = child
			break
		}
	}
	if block == nil {
		return nil
	}

	selector := normalizeSpace(string(src[node.StartByte():block.StartByte()]))
	if selector == "" {
		return nil
	}

	rule := &ParsedRule{Selector: selector}
	addBlockDeclarations(rule, block, src)
	return rule
}

// addBlockDeclarations adds the block's direct declarations to rule.
// Declarations of nested rules belong to those rules.
func addBlockDeclarations(rule *ParsedRule, block *sitter.Node, src []byte) {
	if block == nil {
		return
	}
	for i := uint(0); i < block.ChildCount(); i++ {
		child := block.Child(i)
		if child.Kind() != nodeDeclaration {
			continue
		}
		property, value, ok := declarationParts(child, src)
		if !ok {
			log.Debug("Skipping declaration without property name at line %d", child.StartPosition().Row+1)
			continue
		}
		rule.set(property, value)
	}
}

// declarationParts returns the property name and the raw value text of a
// declaration node. The name runs up to the first unescaped colon, since
// the grammar ends property names at an escape such as `--a\:b`. The
// value spans everything between that colon and the terminating
// semicolon, excluding !important.
func declarationParts(node *sitter.Node, src []byte) (property, value string, ok bool) {
	text := node.Utf8Text(src)
	colon := unescapedIndex(text, ':')
	if colon < 0 {
		return "", "", false
	}

	hasName := false
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == nodePropertyName {
			hasName = true
			break
		}
	}
	property = strings.TrimSpace(text[:colon])
	if !hasName || property == "" {
		return "", "", false
	}

	valueStart := node.StartByte() + uint(colon) + 1
	var start, end uint
	hasValue := false
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case ";", nodeImportant, nodeComment:
			continue
		}
		if child.EndByte() <= valueStart {
			continue
		}
		if !hasValue {
			start = max(child.StartByte(), valueStart)
			hasValue = true
		}
		end = child.EndByte()
	}

	if hasValue {
		value = strings.TrimSpace(string(src[start:end]))
	}
	return property, value, true
}

// walk visits node and its descendants depth-first, in source order.
// Children are skipped when visit returns false.
func walk(node *sitter.Node, visit func(*sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walk(node.Child(i), visit)
	}
}

// normalizeSpace collapses runs of whitespace into single spaces
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
