package doctree

import (
	"cmp"
	"slices"
	"strings"
)

// SortNodes orders nodes for navigation: pages with a SidebarOrder first,
// ascending, then pages without one. Ties fall back to page path. Nodes
// without a page go last, in their existing order.
func SortNodes(nodes []*Node) {
	slices.SortStableFunc(nodes, compareNodes)
}

func compareNodes(a, b *Node) int {
	switch {
	case a.Page == nil && b.Page == nil:
		return 0
	case a.Page == nil:
		return 1
	case b.Page == nil:
		return -1
	}

	ao, bo := a.Page.Meta.SidebarOrder, b.Page.Meta.SidebarOrder
	switch {
	case ao != nil && bo == nil:
		return -1
	case ao == nil && bo != nil:
		return 1
	case ao != nil && bo != nil:
		if c := cmp.Compare(*ao, *bo); c != 0 {
			return c
		}
	}
	return strings.Compare(a.Page.Path, b.Page.Path)
}
