package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// SimpleUI implements UI by writing plain text to the cobra command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait is a no-op; SimpleUI prints synchronously.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayUsage prints the usage message and the package table.
func (s *SimpleUI) DisplayUsage(ctx context.Context, usage m.Usage, catalog *m.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := s.cmd.OutOrStdout()
	if _, err := fmt.Fprint(out, usageText(usage)); err != nil {
		return err
	}

	renderCatalogTable(out, catalog)

	return nil
}

// DisplayCatalog prints the catalog.
func (s *SimpleUI) DisplayCatalog(ctx context.Context, catalog *m.Catalog, format m.CatalogFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return renderCatalog(s.cmd.OutOrStdout(), catalog, format)
}

// DisplayDryRun prints the command that would run for job.
func (s *SimpleUI) DisplayDryRun(ctx context.Context, job m.Job) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", job.CommandLine)
}

// DisplayStarting announces a generator invocation.
func (s *SimpleUI) DisplayStarting(ctx context.Context, job m.Job) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Generating %s from %s\n", job.Package, job.Source)
}

// DisplayABISummary prints what the ABI of job declares.
func (s *SimpleUI) DisplayABISummary(ctx context.Context, job m.Job, summary m.ABISummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("  ABI %s\n", formatABISummary(job, summary))
}

// DisplayCompleted reports the outcome of a generator invocation.
func (s *SimpleUI) DisplayCompleted(ctx context.Context, job m.Job, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	if err != nil {
		s.printf("  ✗ %s failed\n", job.Package)
		return
	}

	s.printf("  ✓ %s -> %s\n", job.Package, job.Out)
}

// DisplayDiff prints the change to the generated bindings of job.
func (s *SimpleUI) DisplayDiff(ctx context.Context, job m.Job, diff string) {
	if err := ctx.Err(); err != nil {
		return
	}

	if strings.TrimSpace(diff) == "" {
		s.printf("  %s: bindings unchanged\n", job.Package)
		return
	}

	s.printf("%s", diff)

	if !strings.HasSuffix(diff, "\n") {
		s.printf("\n")
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
