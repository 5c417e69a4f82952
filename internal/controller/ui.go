// Package controller renders fastgen output for the terminal.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// UI defines everything the workflow shows to the developer.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start prepares the UI for a generation run.
	Start(ctx context.Context) error
	// Close ends a generation run.
	Close(ctx context.Context)
	// Wait blocks until the UI has flushed everything it displays.
	Wait(ctx context.Context)

	// DisplayUsage prints the usage message followed by the package table.
	DisplayUsage(ctx context.Context, usage m.Usage, catalog *m.Catalog) error
	// DisplayCatalog prints the catalog in the requested format.
	DisplayCatalog(ctx context.Context, catalog *m.Catalog, format m.CatalogFormat) error

	DisplayDryRun(ctx context.Context, job m.Job)
	DisplayStarting(ctx context.Context, job m.Job)
	DisplayABISummary(ctx context.Context, job m.Job, summary m.ABISummary)
	DisplayCompleted(ctx context.Context, job m.Job, err error)
	DisplayDiff(ctx context.Context, job m.Job, diff string)
}

// NewUI returns a TUI when attached to a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
