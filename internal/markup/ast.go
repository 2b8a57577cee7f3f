package markup

// NodeType discriminates the node variants produced by Parse.
type NodeType int

const (
	// ElementNode is a tag with attributes and children.
	ElementNode NodeType = iota
	// TextNode is raw character data between tags.
	TextNode
	// CommentNode is a <!-- --> comment, preserved verbatim.
	CommentNode
)

// Attribute is a single attribute on an element. Name and Value keep the
// exact case and content written in the source. Quote records the original
// delimiter so serialization can re-emit values containing the other quote
// character.
type Attribute struct {
	Name     string
	Value    string
	HasValue bool
	Quote    byte
}

// Node is one node of a parsed template tree.
type Node struct {
	Type NodeType

	// Element fields.
	Name        string
	Attrs       []Attribute
	Children    []*Node
	SelfClosing bool

	// Text or comment body.
	Content string
}

// voidElements never take children; their open tag closes them.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "param": true, "source": true,
	"track": true, "wbr": true,
}

// IsVoid reports whether a tag name is a void element.
func IsVoid(name string) bool {
	return voidElements[name]
}
