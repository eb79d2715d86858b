package doctree

// Metadata is the navigation-relevant part of a page's front matter.
type Metadata struct {
	Title        string         `json:"title,omitempty"`         // Display title; empty means not navigable
	SidebarTitle string         `json:"sidebar_title,omitempty"` // Overrides Title in navigation
	SidebarOrder *int           `json:"sidebar_order,omitempty"` // Sort key; nil sorts after ordered pages
	Link         string         `json:"link,omitempty"`          // External URL the entry points to instead of Path
	Extra        map[string]any `json:"extra,omitempty"`         // Unrecognized keys
}

// NavTitle returns the label used for navigation.
func (m Metadata) NavTitle() string {
	if m.SidebarTitle != "" {
		return m.SidebarTitle
	}
	return m.Title
}

// Page is one documentation page. Path is slash-delimited without a
// leading slash; directory landing pages end in "/".
type Page struct {
	Path string   `json:"path"`
	Meta Metadata `json:"meta"`
}

// Node is one path segment in the page forest. A node named "" is the
// index sentinel marking that its parent directory has a landing page.
type Node struct {
	Name     string  `json:"name"`
	Page     *Page   `json:"page,omitempty"` // nil for intermediate directories
	Children []*Node `json:"children,omitempty"`
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasIndex reports whether the node has an index sentinel child.
func (n *Node) HasIndex() bool {
	return n.Child("") != nil
}

// Walk visits every node of the forest in pre-order. The path passed to fn
// is the node names from the top of the forest joined with "/".
func Walk(forest []*Node, fn func(path string, n *Node)) {
	var walk func(prefix string, nodes []*Node)
	walk = func(prefix string, nodes []*Node) {
		for _, n := range nodes {
			p := prefix + n.Name
			fn(p, n)
			walk(p+"/", n.Children)
		}
	}
	walk("", forest)
}
