package markup

// TagPrefix marks elements handled by the tag expander.
const TagPrefix = "r:"

// Kind distinguishes raw text from tag nodes.
type Kind int

const (
	TextNode Kind = iota
	TagNode
)

// Attribute is a declared tag attribute in source order.
type Attribute struct {
	Name  string
	Value string
}

// Node is either a run of raw markup or a tag with children.
type Node struct {
	Kind Kind
	// Text holds the raw markup of a TextNode.
	Text string
	// Name is the tag name without the r: prefix, e.g. "database:form".
	Name        string
	Attrs       []Attribute
	Children    []*Node
	SelfClosing bool
	Line        int
}

// AttrMap returns the declared attributes keyed by name. The first
// declaration wins when a name is repeated.
func (n *Node) AttrMap() map[string]string {
	out := make(map[string]string, len(n.Attrs))
	for _, attr := range n.Attrs {
		if _, exists := out[attr.Name]; exists {
			continue
		}
		out[attr.Name] = attr.Value
	}
	return out
}
