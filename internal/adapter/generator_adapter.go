package adapter

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// DefaultGenerator is the binding generator executable used when none is
// configured.
const DefaultGenerator = "abigen"

// GeneratorArgs describes a single generator invocation.
type GeneratorArgs struct {
	// Binary overrides the adapter's default executable when set.
	Binary string
	// Extra arguments placed before the generator flags.
	Extra   []string
	Source  m.Path
	Package string
	Out     m.Path
}

// GeneratorAdapter runs the external binding generator.
type GeneratorAdapter interface {
	// Command returns the argument vector that Generate would execute.
	Command(args GeneratorArgs) []string

	// Generate runs the generator to completion and returns its combined
	// stdout/stderr output. A non-zero exit status is returned as an error.
	Generate(ctx context.Context, args GeneratorArgs) (output string, err error)
}

// LocalGeneratorAdapter executes the generator as a child process. Arguments
// are passed as a vector, never through a shell.
type LocalGeneratorAdapter struct {
	binary string
}

// NewLocalGeneratorAdapter constructs a LocalGeneratorAdapter that falls back
// to binary when GeneratorArgs.Binary is empty.
func NewLocalGeneratorAdapter(binary string) *LocalGeneratorAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultGenerator
	}

	return &LocalGeneratorAdapter{binary: binary}
}

// Command builds `<binary> [extra...] -sol <source> -pkg <package> -out <out>`.
func (a *LocalGeneratorAdapter) Command(args GeneratorArgs) []string {
	binary := args.Binary
	if strings.TrimSpace(binary) == "" {
		binary = a.binary
	}

	argv := make([]string, 0, len(args.Extra)+7)
	argv = append(argv, binary)
	argv = append(argv, args.Extra...)
	argv = append(argv,
		"-sol", string(args.Source),
		"-pkg", args.Package,
		"-out", string(args.Out),
	)

	return argv
}

// Generate runs the generator and waits for it to exit.
func (a *LocalGeneratorAdapter) Generate(ctx context.Context, args GeneratorArgs) (string, error) {
	argv := a.Command(args)

	// #nosec G204 - the generator and its arguments come from the local catalog
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var output bytes.Buffer

	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()

	return output.String(), err
}

// QuoteCommand renders an argument vector as a shell-safe command line for
// messages. Arguments that cannot be quoted are shown verbatim.
func QuoteCommand(argv []string) string {
	quoted := make([]string, 0, len(argv))

	for _, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			q = arg
		}

		quoted = append(quoted, q)
	}

	return strings.Join(quoted, " ")
}
