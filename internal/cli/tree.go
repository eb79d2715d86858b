package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/sidebar"
	"github.com/spf13/cobra"
)

type treeOptions struct {
	dir       string
	root      string
	title     string
	exclude   []string
	showDepth int
	path      string
	all       bool
	pdftotext bool
}

func newTreeCmd() *cobra.Command {
	var opts treeOptions

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the sidebar for a section of the content tree",
		Long: `Print the navigation links a section of a content directory renders,
in sidebar order. Links beyond --show-depth stay folded unless they lead to
--path, the same way the rendered sidebar hides them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := loadPages(cmd.Context(), opts.dir, opts.pdftotext, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runTree(cmd.OutOrStdout(), doctree.Build(pages), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", ".", "Content directory")
	cmd.Flags().StringVarP(&opts.root, "root", "r", "", "Section root path, empty for the whole site")
	cmd.Flags().StringVar(&opts.title, "title", "", "Override the section title")
	cmd.Flags().StringSliceVarP(&opts.exclude, "exclude", "x", nil, "Page paths to hide, with their subtrees")
	cmd.Flags().IntVar(&opts.showDepth, "show-depth", 0, "Depth from which links start folded")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "Page being viewed, e.g. /guides/python/")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Unfold every link")
	cmd.Flags().BoolVar(&opts.pdftotext, "pdftotext", false, "Fall back to pdftotext for PDF titles")
	return cmd
}

func runTree(w io.Writer, forest []*doctree.Node, opts treeOptions) error {
	st := newStyles(w)

	var active []string
	if p := strings.Trim(opts.path, "/"); p != "" {
		active = strings.Split(p, "/")
	}

	sec, ok := sidebar.BuildSection(forest, sidebar.SectionOptions{
		Root:            opts.root,
		Title:           opts.title,
		Exclude:         opts.exclude,
		ShowDepth:       opts.showDepth,
		SuppressMissing: true,
	}, active, nil)
	if !ok {
		return fmt.Errorf("navigation root %q not found", opts.root)
	}

	title := sec.Title
	switch {
	case title != "":
	case sec.Root == "":
		title = "(all pages)"
	default:
		title = "(untitled)"
	}
	header := st.title.Render(title)
	if sec.HeadingLink != "" {
		header += " " + st.dim.Render(sec.HeadingLink)
	}
	fmt.Fprintln(w, header)

	if len(sec.Links) == 0 {
		fmt.Fprintln(w, st.dim.Render("  no links"))
		return nil
	}
	printLinks(w, st, sec.Links, 1, opts.all)
	return nil
}

func printLinks(w io.Writer, st styles, links []sidebar.Link, depth int, all bool) {
	indent := strings.Repeat("  ", depth)
	for _, l := range links {
		marker := "-"
		label := l.Label
		if l.Active {
			marker = ">"
			label = st.active.Render(label)
		}
		folded := len(l.Children) > 0 && !all && l.Collapsed && !l.Active

		target := l.Target
		if !strings.Contains(target, "://") {
			target = "/" + strings.TrimPrefix(target, "/")
		}
		line := indent + marker + " " + label + " " + st.dim.Render(target)
		if folded {
			line += st.dim.Render(fmt.Sprintf(" (+%d)", len(l.Children)))
		}
		fmt.Fprintln(w, line)

		if !folded {
			printLinks(w, st, l.Children, depth+1, all)
		}
	}
}
