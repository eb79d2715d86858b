package doctree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ordered(path string, order int) *Node {
	return &Node{Name: path, Page: &Page{Path: path, Meta: Metadata{Title: path, SidebarOrder: &order}}}
}

func unordered(path string) *Node {
	return &Node{Name: path, Page: &Page{Path: path, Meta: Metadata{Title: path}}}
}

func paths(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		if n.Page == nil {
			out = append(out, "<nil>")
			continue
		}
		out = append(out, n.Page.Path)
	}
	return out
}

func TestSortNodes_OrderedBeforeUnordered(t *testing.T) {
	nodes := []*Node{
		ordered("c/", 3),
		unordered("a/"),
		ordered("x/", 1),
		ordered("b/", 2),
	}
	SortNodes(nodes)

	want := []string{"x/", "b/", "c/", "a/"}
	if diff := cmp.Diff(want, paths(nodes)); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNodes_TiesByPath(t *testing.T) {
	nodes := []*Node{
		ordered("b/", 1),
		ordered("a/", 1),
		unordered("z/"),
		unordered("m/"),
	}
	SortNodes(nodes)

	want := []string{"a/", "b/", "m/", "z/"}
	if diff := cmp.Diff(want, paths(nodes)); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNodes_NegativeOrder(t *testing.T) {
	nodes := []*Node{ordered("a/", 0), ordered("b/", -5), unordered("c/")}
	SortNodes(nodes)

	want := []string{"b/", "a/", "c/"}
	if diff := cmp.Diff(want, paths(nodes)); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
}

func TestSortNodes_PagelessLast(t *testing.T) {
	nodes := []*Node{{Name: "dir"}, unordered("a/")}
	SortNodes(nodes)

	want := []string{"a/", "<nil>"}
	if diff := cmp.Diff(want, paths(nodes)); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Page{titled("a/", "A"), titled("a/b/", "B")}); err != nil {
		t.Errorf("expected clean list, got %v", err)
	}

	err := Validate([]Page{
		titled("a/", "A"),
		titled("a/", "A again"),
		titled("/b/", "B"),
		titled("c//d/", "D"),
		titled("", "Empty"),
	})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	var dup *DuplicatePathError
	if !errors.As(err, &dup) || dup.Path != "a/" || dup.Count != 2 {
		t.Errorf("expected duplicate error for %q, got %v", "a/", err)
	}

	var invalid []string
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var ip *InvalidPathError
		if errors.As(e, &ip) {
			invalid = append(invalid, ip.Reason)
		}
	}
	want := []string{"leading slash", "empty segment", "empty"}
	if diff := cmp.Diff(want, invalid); diff != "" {
		t.Errorf("invalid path reasons mismatch (-want +got):\n%s", diff)
	}
}
