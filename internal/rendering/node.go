package rendering

// Node is one element of a rendered presentation. A Node with an empty Tag
// is a text run. Children that are nil are skipped, so templates can build
// optional parts inline.
type Node struct {
	Tag      string
	Class    string
	Text     string
	Attrs    map[string]string
	Children []*Node
}

// El builds an element node.
func El(tag, class string, children ...*Node) *Node {
	n := &Node{Tag: tag, Class: class}
	return n.Add(children...)
}

// TextEl builds an element whose only content is text.
func TextEl(tag, class, text string) *Node {
	return &Node{Tag: tag, Class: class, Children: []*Node{Text(text)}}
}

// Text builds a text run.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Add appends the non-nil children.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// With sets an attribute.
func (n *Node) With(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// IsText reports whether n is a text run.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// when returns n if cond holds, else nil.
func when(cond bool, n func() *Node) *Node {
	if !cond {
		return nil
	}
	return n()
}

// each maps items to nodes.
func each[T any](items []T, fn func(T) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
