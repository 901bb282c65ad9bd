package css

import (
	"slices"
	"strings"

	"bennypowers.dev/csstokens/internal/log"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ClassSelectors parses a selector list and returns, for each
// comma-separated selector, its class names in source order.
// Pseudo-class names are not classes; classes inside pseudo-class
// arguments such as :not(.x) are. A selector list that does not
// parse yields no selectors.
func (p *Parser) ClassSelectors(selector string) [][]string {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return [][]string{}
	}
	if cached, ok := p.selectors.Get(selector); ok {
		return cloneClassLists(cached)
	}

	result := p.parseClassSelectors(selector)
	p.selectors.Add(selector, result)
	return cloneClassLists(result)
}

func (p *Parser) parseClassSelectors(selector string) [][]string {
	result := [][]string{}

	src := []byte(selector + "{}")
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		log.Debug("Failed to parse selector %q", selector)
		return result
	}
	defer tree.Close()

	var selectors *sitter.Node
	walk(tree.RootNode(), func(node *sitter.Node) bool {
		if selectors != nil {
			return false
		}
		if node.Kind() == nodeSelectors {
			selectors = node
			return false
		}
		return true
	})

	if selectors == nil || selectors.HasError() || tree.RootNode().HasError() {
		log.Debug("Ignoring unparseable selector %q", selector)
		return result
	}

	for i := uint(0); i < selectors.NamedChildCount(); i++ {
		child := selectors.NamedChild(i)
		if child.Kind() == nodeComment {
			continue
		}
		result = append(result, classNames(child, src))
	}
	return result
}

// classNames collects the class names under node in source order
func classNames(node *sitter.Node, src []byte) []string {
	names := []string{}
	var collect func(n *sitter.Node)
	collect = func(n *sitter.Node) {
		isClass := n.Kind() == nodeClassSelector
		for i := uint(0); i < n.ChildCount(); i++ {
			child := n.Child(i)
			if isClass && child.Kind() == nodeClassName {
				names = append(names, child.Utf8Text(src))
				continue
			}
			collect(child)
		}
	}
	collect(node)
	return names
}

func cloneClassLists(lists [][]string) [][]string {
	out := make([][]string, len(lists))
	for i, l := range lists {
		out[i] = slices.Clone(l)
	}
	return out
}
