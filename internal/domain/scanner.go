package domain

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// DefaultMarker identifies the directives that invoke the binding wrapper.
const DefaultMarker = "go run ./generation/generate/wrap.go"

// directiveArgs is the number of arguments a wrapper directive carries after
// the marker: the ABI path and the package name.
const directiveArgs = 2

const maxDirectiveLine = 1024 * 1024

// ScanDirectives lazily yields one Directive per line of r that contains
// marker. Iteration stops at the first malformed directive, which is yielded
// as a *DirectiveError.
func ScanDirectives(r io.Reader, file m.Path, marker string) iter.Seq2[m.Directive, error] {
	return func(yield func(m.Directive, error) bool) {
		if marker == "" {
			yield(m.Directive{}, ErrEmptyMarker)
			return
		}

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxDirectiveLine)

		lineNo := 0

		for scanner.Scan() {
			lineNo++
			line := scanner.Text()

			idx := strings.LastIndex(line, marker)
			if idx < 0 {
				continue
			}

			directive, err := parseDirective(line[idx+len(marker):])
			if err != nil {
				err.File = file
				err.Line = lineNo
				err.Text = line
				yield(m.Directive{}, err)

				return
			}

			directive.File = file
			directive.Line = lineNo

			if !yield(directive, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			yield(m.Directive{}, fmt.Errorf("read %s: %w", file, err))
		}
	}
}

func parseDirective(rest string) (m.Directive, *DirectiveError) {
	fields := strings.Fields(rest)
	if len(fields) != directiveArgs {
		return m.Directive{}, &DirectiveError{Tokens: len(fields)}
	}

	return m.Directive{ABIPath: fields[0], Package: fields[1]}, nil
}
