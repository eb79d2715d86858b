package doctree

import (
	"slices"
	"strings"
)

// Build groups pages into a forest by splitting their paths on "/".
//
// Pages are processed in byte-wise path order, so sibling order in the
// result is deterministic regardless of input order. A page is attached to
// the node of its last named segment; a trailing slash additionally creates
// an index sentinel ("") under that node. Segments without a page of their
// own still get a node so deeper pages have a parent.
//
// Paths must be unique. Build does not check this; for duplicates the one
// appearing later in pages wins. Use Validate to detect them.
func Build(pages []Page) []*Node {
	sorted := slices.Clone(pages)
	slices.SortStableFunc(sorted, func(a, b Page) int {
		return strings.Compare(a.Path, b.Path)
	})

	root := &Node{}
	index := map[*Node]map[string]*Node{}

	childOf := func(parent *Node, name string) *Node {
		kids := index[parent]
		if kids == nil {
			kids = map[string]*Node{}
			index[parent] = kids
		}
		if n, ok := kids[name]; ok {
			return n
		}
		n := &Node{Name: name}
		kids[name] = n
		parent.Children = append(parent.Children, n)
		return n
	}

	for i := range sorted {
		page := &sorted[i]
		segs := strings.Split(page.Path, "/")

		owner := len(segs) - 1
		if owner > 0 && segs[owner] == "" {
			owner--
		}

		cur := root
		for j, seg := range segs {
			cur = childOf(cur, seg)
			if j == owner {
				cur.Page = page
			}
		}
	}

	return root.Children
}
