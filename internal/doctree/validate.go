package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// DuplicatePathError reports a path shared by more than one page.
type DuplicatePathError struct {
	Path  string
	Count int
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate page path %q (%d pages)", e.Path, e.Count)
}

// InvalidPathError reports a path that is not in normalized form.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid page path %q: %s", e.Path, e.Reason)
}

// Validate checks the page list against the contract Build relies on.
// All problems are returned together; nil means the list is clean.
func Validate(pages []Page) error {
	var errs []error
	counts := make(map[string]int, len(pages))
	var order []string

	for _, p := range pages {
		switch {
		case p.Path == "":
			errs = append(errs, &InvalidPathError{Path: p.Path, Reason: "empty"})
			continue
		case strings.HasPrefix(p.Path, "/"):
			errs = append(errs, &InvalidPathError{Path: p.Path, Reason: "leading slash"})
		case strings.Contains(p.Path, "//"):
			errs = append(errs, &InvalidPathError{Path: p.Path, Reason: "empty segment"})
		}
		if counts[p.Path] == 0 {
			order = append(order, p.Path)
		}
		counts[p.Path]++
	}

	for _, path := range order {
		if n := counts[path]; n > 1 {
			errs = append(errs, &DuplicatePathError{Path: path, Count: n})
		}
	}
	return errors.Join(errs...)
}
