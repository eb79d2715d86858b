// Package cli implements the docnav command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/docnav/internal/content"
	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/parser"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the docnav command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docnav",
		Short: "Build and inspect documentation sidebars",
		Long: `docnav turns a directory of documentation pages into the navigation
tree a docs site renders in its sidebar.

The server lives in cmd/server; this tool works on a local content
directory.`,
		SilenceUsage: true,
	}
	root.AddCommand(newTreeCmd(), newCheckCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadPages scans dir the same way the server's dir source does. Parse
// warnings go to errOut.
func loadPages(ctx context.Context, dir string, pdftotext bool, errOut io.Writer) ([]doctree.Page, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	log := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	src := content.NewDirSource(os.DirFS(dir), parser.Options{PDFFallbackPdftotext: pdftotext}, log)
	return src.Pages(ctx)
}
