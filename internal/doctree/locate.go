package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a root path does not resolve to a node.
var ErrNotFound = errors.New("doctree: node not found")

// NotFoundError describes which segment of a root path failed to match.
type NotFoundError struct {
	Root    string
	Segment string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find node at %s (specifically at %s)", e.Root, e.Segment)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Locate walks the forest one segment of root at a time. Leading and
// trailing slashes are ignored. An empty root yields a synthetic node whose
// children are the whole forest.
func Locate(forest []*Node, root string) (*Node, error) {
	root = strings.TrimPrefix(root, "/")
	root = strings.TrimSuffix(root, "/")
	if root == "" {
		return &Node{Children: forest}, nil
	}

	parent := &Node{Children: forest}
	for _, seg := range strings.Split(root, "/") {
		n := parent.Child(seg)
		if n == nil {
			return nil, &NotFoundError{Root: root, Segment: seg}
		}
		parent = n
	}
	return parent, nil
}
