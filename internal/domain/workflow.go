// Package domain holds the fastgen workflow: scanning the directive file,
// resolving contract sources into a catalog and driving the generator.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"fastgen.dev/pkg/fastgen/internal/adapter"
	"fastgen.dev/pkg/fastgen/internal/controller"
	m "fastgen.dev/pkg/fastgen/internal/model"
)

const (
	// DefaultOutExt is the extension of generated binding files.
	DefaultOutExt = ".go"

	generatedDir = "generated"
)

// CatalogArgs contains the arguments for building a catalog.
type CatalogArgs struct {
	Directives       m.Path
	BaseDir          m.Path
	Marker           string
	Resolver         ResolverOptions
	StrictDuplicates bool
}

// GenerateArgs contains the arguments for a generation run.
type GenerateArgs struct {
	Packages []string
	// Directives is shown on the usage screen.
	Directives m.Path
	BaseDir    m.Path
	OutExt     string

	Generator     string
	GeneratorArgs []string

	DryRun    bool
	Diff      bool
	VerifyABI bool
}

// ListArgs contains the arguments for listing a catalog.
type ListArgs struct {
	Format m.CatalogFormat
}

// Workflow defines the fastgen operations.
type Workflow interface {
	// BuildCatalog scans the directive file and resolves every wrapper
	// directive to its contract source.
	BuildCatalog(ctx context.Context, args CatalogArgs) (*m.Catalog, error)
	// Generate regenerates the bindings of the requested packages in order,
	// or shows the usage screen and returns ErrUsage when the request is
	// empty or names an unknown package.
	Generate(ctx context.Context, catalog *m.Catalog, args GenerateArgs) error
	// List prints the catalog.
	List(ctx context.Context, catalog *m.Catalog, args ListArgs) error
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	generator adapter.GeneratorAdapter
	abi       adapter.ABIAdapter
	ui        controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	generator adapter.GeneratorAdapter,
	abi adapter.ABIAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:        fs,
		generator: generator,
		abi:       abi,
		ui:        ui,
	}
}

func (w *workflow) BuildCatalog(ctx context.Context, args CatalogArgs) (*m.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := w.fs.Open(args.Directives)
	if err != nil {
		return nil, fmt.Errorf("open directive file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	marker := args.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	resolver := NewSourceResolver(w.fs, args.Resolver)
	catalog := m.NewCatalog()

	for directive, err := range ScanDirectives(file, args.Directives, marker) {
		if err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, err := w.resolveEntry(resolver, args.BaseDir, directive)
		if errors.Is(err, ErrSkippedSource) {
			slog.Debug("skipping directive without source", "package", directive.Package, "line", directive.Line, "reason", err)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", directive.File, directive.Line, err)
		}

		if previous, ok := catalog.Get(entry.Package); ok {
			if args.StrictDuplicates {
				return nil, &DuplicatePackageError{
					Package: entry.Package,
					Line:    directive.Line,
					First:   previous.Source,
					Second:  entry.Source,
				}
			}

			slog.Warn("package declared more than once; the later directive wins",
				"package", entry.Package, "line", directive.Line,
				"previous", previous.Source, "source", entry.Source)
		}

		catalog.Set(entry)
		slog.Debug("catalogued package", "package", entry.Package, "source", entry.Source)
	}

	slog.Info("catalog built", "directives", args.Directives, "packages", catalog.Len())

	return catalog, nil
}

func (w *workflow) resolveEntry(resolver *SourceResolver, baseDir m.Path, directive m.Directive) (m.Entry, error) {
	abiPath, err := resolver.ABIPath(baseDir, directive.ABIPath)
	if err != nil {
		return m.Entry{}, err
	}

	source, err := resolver.Resolve(baseDir, directive.ABIPath)
	if err != nil {
		return m.Entry{}, err
	}

	return m.Entry{Package: directive.Package, ABIPath: abiPath, Source: source}, nil
}

func (w *workflow) Generate(ctx context.Context, catalog *m.Catalog, args GenerateArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unknown := unknownPackages(catalog, args.Packages)
	if len(args.Packages) == 0 || len(unknown) > 0 {
		slog.Info("showing usage", "requested", args.Packages, "unknown", unknown)

		usage := m.Usage{Directives: args.Directives, Unknown: unknown}
		if err := w.ui.DisplayUsage(ctx, usage, catalog); err != nil {
			return fmt.Errorf("display usage: %w", err)
		}

		return ErrUsage
	}

	jobs := w.planJobs(catalog, args)

	if args.DryRun {
		for _, job := range jobs {
			w.ui.DisplayDryRun(ctx, job)
		}

		return nil
	}

	if err := w.ui.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	err := w.runJobs(ctx, jobs, args)

	w.ui.Close(ctx)
	w.ui.Wait(ctx)

	return err
}

func (w *workflow) List(ctx context.Context, catalog *m.Catalog, args ListArgs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.ui.DisplayCatalog(ctx, catalog, args.Format)
}

// OutputPath returns <baseDir>/generated/<pkg>/<pkg><ext>.
func OutputPath(baseDir m.Path, pkg, ext string) m.Path {
	return m.Path(filepath.Join(string(baseDir), generatedDir, pkg, pkg+normalizeExt(ext, DefaultOutExt)))
}

func unknownPackages(catalog *m.Catalog, packages []string) []string {
	var unknown []string

	for _, name := range packages {
		if !catalog.Has(name) {
			unknown = append(unknown, name)
		}
	}

	return unknown
}

func (w *workflow) planJobs(catalog *m.Catalog, args GenerateArgs) []m.Job {
	jobs := make([]m.Job, 0, len(args.Packages))

	for _, name := range args.Packages {
		entry, _ := catalog.Get(name)

		job := m.Job{
			Package: name,
			ABIPath: entry.ABIPath,
			Source:  entry.Source,
			Out:     OutputPath(args.BaseDir, name, args.OutExt),
		}
		job.Command = w.generator.Command(generatorArgs(job, args))
		job.CommandLine = adapter.QuoteCommand(job.Command)

		jobs = append(jobs, job)
	}

	return jobs
}

func generatorArgs(job m.Job, args GenerateArgs) adapter.GeneratorArgs {
	return adapter.GeneratorArgs{
		Binary:  args.Generator,
		Extra:   args.GeneratorArgs,
		Source:  job.Source,
		Package: job.Package,
		Out:     job.Out,
	}
}

func (w *workflow) runJobs(ctx context.Context, jobs []m.Job, args GenerateArgs) error {
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("generation interrupted before %s: %w", job.Package, err)
		}

		if err := w.runJob(ctx, job, args); err != nil {
			slog.Error("generation stopped",
				"package", job.Package, "position", i+1, "requested", len(jobs), "error", err)

			return err
		}
	}

	slog.Info("generation finished", "packages", len(jobs))

	return nil
}

func (w *workflow) runJob(ctx context.Context, job m.Job, args GenerateArgs) error {
	w.ui.DisplayStarting(ctx, job)

	if err := w.fs.MkdirAll(m.Path(filepath.Dir(string(job.Out)))); err != nil {
		err = fmt.Errorf("create output directory for %s: %w", job.Package, err)
		w.ui.DisplayCompleted(ctx, job, err)

		return err
	}

	if args.VerifyABI {
		summary, err := w.abi.Inspect(job.ABIPath)
		if err != nil {
			err = fmt.Errorf("verify ABI of %s: %w", job.Package, err)
			w.ui.DisplayCompleted(ctx, job, err)

			return err
		}

		w.ui.DisplayABISummary(ctx, job, summary)
	}

	var previous []byte
	if args.Diff {
		previous = w.readBindings(job.Out)
	}

	slog.Debug("running generator", "package", job.Package, "command", job.CommandLine)

	output, err := w.generator.Generate(ctx, generatorArgs(job, args))
	if err != nil {
		genErr := &GeneratorError{
			Package: job.Package,
			Command: job.CommandLine,
			Output:  output,
			Err:     err,
		}
		w.ui.DisplayCompleted(ctx, job, genErr)

		return genErr
	}

	slog.Debug("generator finished", "package", job.Package, "output", output)
	w.ui.DisplayCompleted(ctx, job, nil)

	if args.Diff {
		diff, err := bindingsDiff(job, previous, w.readBindings(job.Out))
		if err != nil {
			slog.Warn("could not diff bindings", "package", job.Package, "error", err)
			return nil
		}

		w.ui.DisplayDiff(ctx, job, diff)
	}

	return nil
}

func (w *workflow) readBindings(path m.Path) []byte {
	if !w.fs.Exists(path) {
		return nil
	}

	content, err := w.fs.ReadFile(path)
	if err != nil {
		slog.Warn("could not read bindings", "path", path, "error", err)
		return nil
	}

	return content
}
