package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const (
	// DefaultSourceExt is the extension of contract sources.
	DefaultSourceExt = ".sol"

	abiSegment   = "abi"
	srcSegment   = "src"
	devSegment   = "dev"
	testsSegment = "tests"
)

// DefaultSkip lists contracts that have a directive but no source in the
// tree. They are left out of the catalog.
var DefaultSkip = []string{"OffchainAggregator.sol"}

// ResolverOptions configures a SourceResolver.
type ResolverOptions struct {
	SourceExt string
	Skip      []string
}

// existenceChecker is the part of the filesystem the resolver depends on.
type existenceChecker interface {
	Exists(path m.Path) bool
}

// SourceResolver maps the ABI path of a directive to the contract source the
// ABI was compiled from.
type SourceResolver struct {
	fs   existenceChecker
	ext  string
	skip map[string]struct{}
}

// NewSourceResolver constructs a SourceResolver.
func NewSourceResolver(fs existenceChecker, opts ResolverOptions) *SourceResolver {
	skip := make(map[string]struct{}, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[name] = struct{}{}
	}

	return &SourceResolver{
		fs:   fs,
		ext:  normalizeExt(opts.SourceExt, DefaultSourceExt),
		skip: skip,
	}
}

// ABIPath returns the absolute location of abiPath, which is relative to the
// directive file's directory unless already absolute.
func (r *SourceResolver) ABIPath(baseDir m.Path, abiPath string) (m.Path, error) {
	path := abiPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(baseDir), path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", abiPath, err)
	}

	return m.Path(abs), nil
}

// Candidates returns the source locations tried for abiPath, in order: the
// direct abi→src mapping, the same file in a dev subdirectory, and the same
// file in a tests subdirectory.
func (r *SourceResolver) Candidates(baseDir m.Path, abiPath string) ([]m.Path, error) {
	abs, err := r.ABIPath(baseDir, abiPath)
	if err != nil {
		return nil, err
	}

	direct := replaceSegment(string(abs), abiSegment, srcSegment)
	direct = strings.TrimSuffix(direct, filepath.Ext(direct)) + r.ext

	dev := filepath.Join(filepath.Dir(direct), devSegment, filepath.Base(direct))
	tests := filepath.Join(filepath.Dir(direct), testsSegment, filepath.Base(direct))

	return []m.Path{m.Path(direct), m.Path(dev), m.Path(tests)}, nil
}

// Resolve returns the first existing candidate source for abiPath. Skipped
// contracts yield ErrSkippedSource; a source found nowhere yields a
// *MissingSourceError.
func (r *SourceResolver) Resolve(baseDir m.Path, abiPath string) (m.Path, error) {
	candidates, err := r.Candidates(baseDir, abiPath)
	if err != nil {
		return "", err
	}

	name := filepath.Base(string(candidates[0]))
	if _, ok := r.skip[name]; ok {
		return "", fmt.Errorf("%w: %s", ErrSkippedSource, name)
	}

	for _, candidate := range candidates {
		if r.fs.Exists(candidate) {
			return candidate, nil
		}
	}

	return "", &MissingSourceError{Name: name, Candidates: candidates}
}

// replaceSegment swaps the first path segment equal to from with to.
func replaceSegment(path, from, to string) string {
	sep := string(filepath.Separator)
	parts := strings.Split(path, sep)

	for i, part := range parts {
		if part == from {
			parts[i] = to
			break
		}
	}

	return strings.Join(parts, sep)
}

func normalizeExt(ext, fallback string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		ext = fallback
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}
