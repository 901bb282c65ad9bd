package css

import (
	"slices"
	"strings"

	"bennypowers.dev/csstokens/internal/log"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ExtractReferences returns one TokenReference per custom property
// declaration whose value contains at least one var() reference to
// another custom property. Entries follow source order; a property
// declared several times yields several entries.
func (p *Parser) ExtractReferences(source string) []TokenReference {
	src := []byte(source)
	references := []TokenReference{}

	tree := p.parser.Parse(maskBraceValues(src), nil)
	if tree == nil {
		log.Warn("Failed to extract token references: no syntax tree produced")
		return references
	}
	defer tree.Close()

	walk(tree.RootNode(), func(node *sitter.Node) bool {
		if node.Kind() != nodeDeclaration {
			return true
		}
		property, value, ok := declarationParts(node, src)
		if !ok || !strings.HasPrefix(property, CustomPropertyPrefix) {
			return false
		}

		var referenced []string
		if node.HasError() {
			// The declaration tree is unreliable, so scan its
			// raw value text as a standalone value instead.
			referenced = p.VarReferences(value)
		} else {
			referenced = varCalls(node, src)
		}

		if len(referenced) > 0 {
			references = append(references, TokenReference{
				TokenName:        property,
				ReferencedTokens: referenced,
			})
		}
		return false
	})

	return references
}

// VarReferences parses value as a standalone declaration value and returns
// the custom property names referenced by its var() calls, including those
// nested in fallbacks. A value that cannot be parsed has no references.
func (p *Parser) VarReferences(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || !strings.Contains(value, "var(") {
		return []string{}
	}
	if cached, ok := p.values.Get(value); ok {
		return slices.Clone(cached)
	}

	src := []byte("x{" + CustomPropertyPrefix + "v:" + value + "}")
	tree := p.parser.Parse(maskBraceValues(src), nil)
	if tree == nil {
		log.Debug("Failed to parse value %q", value)
		return []string{}
	}
	defer tree.Close()

	refs := varCalls(tree.RootNode(), src)
	p.values.Add(value, refs)
	return slices.Clone(refs)
}

// varCalls collects the first argument of every var() call under node
// when that argument names a custom property
func varCalls(node *sitter.Node, src []byte) []string {
	refs := []string{}
	walk(node, func(n *sitter.Node) bool {
		if n.Kind() != nodeCallExpression {
			return true
		}
		if name, ok := varArgument(n, src); ok {
			refs = append(refs, name)
		}
		// keep walking: fallbacks may hold further var() calls
		return true
	})
	return refs
}

// varArgument returns the first argument of a var() call expression
func varArgument(node *sitter.Node, src []byte) (string, bool) {
	var functionName, arguments *sitter.Node
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case nodeFunctionName:
			functionName = child
		case nodeArguments:
			arguments = child
		}
	}
	if functionName == nil || arguments == nil || functionName.Utf8Text(src) != "var" {
		return "", false
	}

	for i := uint(0); i < arguments.ChildCount(); i++ {
		child := arguments.Child(i)
		switch child.Kind() {
		case "(", ")", ",", nodeComment:
			continue
		}
		name := strings.TrimSpace(child.Utf8Text(src))
		return name, strings.HasPrefix(name, CustomPropertyPrefix)
	}
	return "", false
}
