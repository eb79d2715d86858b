package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/spf13/cobra"
)

// ErrProblems is returned by check when the content has problems.
var ErrProblems = errors.New("content has problems")

func newCheckCmd() *cobra.Command {
	var dir string
	var pdftotext bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a content directory",
		Long: `Check a content directory for pages the sidebar cannot place: duplicate
page paths, pages without a title and directories without a page, which
hide everything below them. Exits non-zero when anything is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := loadPages(cmd.Context(), dir, pdftotext, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runCheck(cmd.OutOrStdout(), pages)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Content directory")
	cmd.Flags().BoolVar(&pdftotext, "pdftotext", false, "Fall back to pdftotext for PDF titles")
	return cmd
}

// problems lists everything wrong with pages, in a stable order.
func problems(pages []doctree.Page) []string {
	var out []string
	if err := doctree.Validate(pages); err != nil {
		out = append(out, strings.Split(err.Error(), "\n")...)
	}

	var untitled []string
	for _, p := range pages {
		if p.Meta.Title == "" {
			untitled = append(untitled, p.Path)
		}
	}
	slices.Sort(untitled)
	for _, p := range untitled {
		out = append(out, fmt.Sprintf("page %q has no title and will not appear in navigation", p))
	}

	// Report only the outermost pageless directory of each hidden subtree.
	var hidden []string
	doctree.Walk(doctree.Build(pages), func(path string, n *doctree.Node) {
		if n.Page != nil || n.Name == "" {
			return
		}
		for _, h := range hidden {
			if strings.HasPrefix(path, h) {
				return
			}
		}
		if count := countPages(n.Children); count > 0 {
			hidden = append(hidden, path+"/")
			out = append(out, fmt.Sprintf("directory %q has no page, hiding %d pages below it", path+"/", count))
		}
	})
	return out
}

func countPages(nodes []*doctree.Node) int {
	var n int
	doctree.Walk(nodes, func(_ string, node *doctree.Node) {
		if node.Page != nil {
			n++
		}
	})
	return n
}

func runCheck(w io.Writer, pages []doctree.Page) error {
	st := newStyles(w)

	found := problems(pages)
	for _, p := range found {
		fmt.Fprintln(w, st.errs.Render("x")+" "+p)
	}

	summary := fmt.Sprintf("%d pages, %d problems", len(pages), len(found))
	if len(found) == 0 {
		fmt.Fprintln(w, st.box.Render(st.success.Render("ok")+" "+summary))
		return nil
	}
	fmt.Fprintln(w, st.box.Render(st.errs.Render("failed")+" "+summary))
	return ErrProblems
}
