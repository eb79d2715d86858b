package doctree

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func titled(path, title string) Page {
	return Page{Path: path, Meta: Metadata{Title: title}}
}

func TestBuild_GuidesScenario(t *testing.T) {
	pages := []Page{
		titled("guides/python/django/", "Django"),
		titled("guides/", "Guides"),
		titled("guides/python/", "Python"),
	}
	forest := Build(pages)

	if len(forest) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(forest))
	}
	guides := forest[0]
	if guides.Name != "guides" {
		t.Fatalf("expected top node %q, got %q", "guides", guides.Name)
	}
	if guides.Page == nil || guides.Page.Path != "guides/" {
		t.Errorf("expected guides to carry page %q, got %+v", "guides/", guides.Page)
	}

	var names []string
	for _, c := range guides.Children {
		names = append(names, c.Name)
	}
	if diff := cmp.Diff([]string{"", "python"}, names); diff != "" {
		t.Errorf("guides children mismatch (-want +got):\n%s", diff)
	}

	index := guides.Child("")
	if index.Page != nil {
		t.Errorf("index sentinel should not carry a page, got %+v", index.Page)
	}

	python := guides.Child("python")
	if python.Page == nil || python.Page.Meta.Title != "Python" {
		t.Fatalf("expected python page, got %+v", python.Page)
	}
	django := python.Child("django")
	if django == nil || django.Page == nil || django.Page.Path != "guides/python/django/" {
		t.Fatalf("expected django under python, got %+v", django)
	}
}

func TestBuild_Empty(t *testing.T) {
	if forest := Build(nil); len(forest) != 0 {
		t.Errorf("expected empty forest, got %d nodes", len(forest))
	}
}

func TestBuild_IntermediateNodes(t *testing.T) {
	forest := Build([]Page{titled("a/b/c/", "C")})

	a := forest[0]
	if a.Page != nil {
		t.Errorf("expected intermediate node a to have no page")
	}
	b := a.Child("b")
	if b == nil || b.Page != nil {
		t.Fatalf("expected intermediate node b without page, got %+v", b)
	}
	c := b.Child("c")
	if c == nil || c.Page == nil {
		t.Fatalf("expected c with page, got %+v", c)
	}
	if !c.HasIndex() {
		t.Error("expected c to have an index sentinel")
	}
}

func TestBuild_FileLikePath(t *testing.T) {
	forest := Build([]Page{titled("docs/intro", "Intro")})
	intro := forest[0].Child("intro")
	if intro == nil || intro.Page == nil {
		t.Fatalf("expected intro page attached, got %+v", intro)
	}
	if intro.HasIndex() {
		t.Error("path without trailing slash should not create an index sentinel")
	}
}

func TestBuild_EveryPageReachableOnce(t *testing.T) {
	pages := []Page{
		titled("a/", "A"),
		titled("a/x/", "X"),
		titled("a/x/y/", "Y"),
		titled("b/", "B"),
		titled("b/z", "Z"),
		titled("c/d/e/", "E"),
	}
	forest := Build(pages)

	seen := map[string]string{}
	Walk(forest, func(path string, n *Node) {
		if n.Page == nil {
			return
		}
		if _, dup := seen[n.Page.Path]; dup {
			t.Errorf("page %q attached twice", n.Page.Path)
		}
		seen[n.Page.Path] = path
	})

	for _, p := range pages {
		got, ok := seen[p.Path]
		if !ok {
			t.Errorf("page %q not reachable", p.Path)
			continue
		}
		if want := strings.TrimSuffix(p.Path, "/"); got != want {
			t.Errorf("page %q reached via %q, want %q", p.Path, got, want)
		}
	}
}

func TestBuild_OrderIndependent(t *testing.T) {
	pages := []Page{
		titled("platforms/", "Platforms"),
		titled("platforms/go/", "Go"),
		titled("platforms/go/http/", "net/http"),
		titled("platforms/python/", "Python"),
		titled("platforms/python/django/", "Django"),
		titled("product/", "Product"),
		titled("product/alerts/", "Alerts"),
	}
	want := Build(pages)

	r := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		shuffled := make([]Page, len(pages))
		copy(shuffled, pages)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		if diff := cmp.Diff(want, Build(shuffled)); diff != "" {
			t.Fatalf("forest depends on input order (-want +got):\n%s", diff)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	pages := []Page{titled("b/", "B"), titled("a/", "A")}
	Build(pages)
	if pages[0].Path != "b/" || pages[1].Path != "a/" {
		t.Errorf("input reordered: %v", pages)
	}
}

func TestBuild_DuplicateLastWins(t *testing.T) {
	forest := Build([]Page{titled("a/", "first"), titled("a/", "second")})
	if got := forest[0].Page.Meta.Title; got != "second" {
		t.Errorf("expected last duplicate to win, got %q", got)
	}
}

func TestLocate(t *testing.T) {
	forest := Build([]Page{
		titled("guides/", "Guides"),
		titled("guides/python/", "Python"),
	})

	tests := []struct {
		name string
		root string
		want string
	}{
		{"plain", "guides", "guides/"},
		{"leading slash", "/guides", "guides/"},
		{"nested", "guides/python", "guides/python/"},
		{"trailing slash", "/guides/python/", "guides/python/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Locate(forest, tt.root)
			if err != nil {
				t.Fatalf("Locate(%q): %v", tt.root, err)
			}
			if n.Page == nil || n.Page.Path != tt.want {
				t.Errorf("Locate(%q) page = %+v, want %q", tt.root, n.Page, tt.want)
			}
		})
	}
}

func TestLocate_NotFound(t *testing.T) {
	forest := Build([]Page{titled("guides/", "Guides")})

	_, err := Locate(forest, "does/not/exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Segment != "does" {
		t.Errorf("expected failing segment %q, got %q", "does", nf.Segment)
	}

	// A miss part way down must not fall back to a sibling match.
	_, err = Locate(forest, "guides/missing")
	if !errors.As(err, &nf) || nf.Segment != "missing" {
		t.Errorf("expected miss at %q, got %v", "missing", err)
	}
}

func TestLocate_EmptyRoot(t *testing.T) {
	forest := Build([]Page{titled("a/", "A"), titled("b/", "B")})
	n, err := Locate(forest, "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(n.Children) != 2 {
		t.Errorf("expected whole forest, got %d children", len(n.Children))
	}
}
