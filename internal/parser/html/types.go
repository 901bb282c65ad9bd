package html

// RegionType identifies the kind of CSS region found in HTML
type RegionType int

const (
	// UnknownRegion is the zero value, indicating an uninitialized region type
	UnknownRegion RegionType = iota
	// StyleTag represents CSS inside a <style> element
	StyleTag
	// StyleAttribute represents declarations inside a style="..." attribute
	StyleAttribute
)

// StyleAttributeSelector is the selector given to inline style declarations
// when they are lifted into a stylesheet. It carries no classes, so inline
// styles declare tokens without attributing them to a component.
const StyleAttributeSelector = "[style]"

// CSSRegion represents a region of CSS content found in an HTML document
type CSSRegion struct {
	Content   string
	StartLine uint
	Type      RegionType
}

// Stylesheet returns the region as stylesheet text
func (r CSSRegion) Stylesheet() string {
	if r.Type == StyleAttribute {
		return StyleAttributeSelector + "{" + r.Content + "}"
	}
	return r.Content
}
