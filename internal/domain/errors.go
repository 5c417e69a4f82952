package domain

import (
	"errors"
	"fmt"
	"strings"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

var (
	// ErrUsage is returned after the usage screen was shown instead of
	// generating anything. The CLI turns it into exit status 1.
	ErrUsage = errors.New("no valid packages requested")

	// ErrEmptyMarker is returned when scanning with an empty marker.
	ErrEmptyMarker = errors.New("directive marker must not be empty")

	ErrMalformedDirective = errors.New("malformed directive")
	ErrMissingSource      = errors.New("contract source not found")
	ErrSkippedSource      = errors.New("contract source skipped")
	ErrDuplicatePackage   = errors.New("duplicate package")
	ErrGeneratorFailed    = errors.New("generator failed")
)

// DirectiveError describes a directive line that does not carry exactly an
// ABI path and a package name after the marker.
type DirectiveError struct {
	File   m.Path
	Line   int
	Text   string
	Tokens int
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s:%d: malformed directive %q: expected 2 arguments (abi path, package name), got %d",
		e.File, e.Line, e.Text, e.Tokens)
}

func (e *DirectiveError) Unwrap() error {
	return ErrMalformedDirective
}

// MissingSourceError names a contract whose source was not found at any of
// the candidate locations.
type MissingSourceError struct {
	Name       string
	Candidates []m.Path
}

func (e *MissingSourceError) Error() string {
	tried := make([]string, 0, len(e.Candidates))
	for _, candidate := range e.Candidates {
		tried = append(tried, string(candidate))
	}

	return fmt.Sprintf("could not find %s (tried %s)", e.Name, strings.Join(tried, ", "))
}

func (e *MissingSourceError) Unwrap() error {
	return ErrMissingSource
}

// DuplicatePackageError reports a package name declared by two directives.
type DuplicatePackageError struct {
	Package string
	Line    int
	First   m.Path
	Second  m.Path
}

func (e *DuplicatePackageError) Error() string {
	return fmt.Sprintf("package %s declared again on line %d (%s, previously %s)",
		e.Package, e.Line, e.Second, e.First)
}

func (e *DuplicatePackageError) Unwrap() error {
	return ErrDuplicatePackage
}

// GeneratorError reports a failed generator invocation.
type GeneratorError struct {
	Package string
	Command string
	Output  string
	Err     error
}

func (e *GeneratorError) Error() string {
	msg := fmt.Sprintf("generate %s: command %q failed: %v", e.Package, e.Command, e.Err)

	if output := strings.TrimSpace(e.Output); output != "" {
		msg += "\n" + output
	}

	return msg
}

func (e *GeneratorError) Unwrap() []error {
	return []error{ErrGeneratorFailed, e.Err}
}
