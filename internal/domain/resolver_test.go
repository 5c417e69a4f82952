package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// fakeFS reports existence from a fixed set of paths.
type fakeFS map[m.Path]bool

func (f fakeFS) Exists(path m.Path) bool {
	return f[path]
}

func newFakeFS(paths ...string) fakeFS {
	fs := fakeFS{}
	for _, path := range paths {
		fs[m.Path(filepath.FromSlash(path))] = true
	}

	return fs
}

const resolverBase = m.Path("/repo/core/gethwrappers")

func TestSourceResolver_Candidates(t *testing.T) {
	resolver := NewSourceResolver(newFakeFS(), ResolverOptions{})

	candidates, err := resolver.Candidates(resolverBase, "../../contracts/solc/v0.6/abi/Foo.json")
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.FromSlash("/repo/contracts/solc/v0.6/src/Foo.sol")),
		m.Path(filepath.FromSlash("/repo/contracts/solc/v0.6/src/dev/Foo.sol")),
		m.Path(filepath.FromSlash("/repo/contracts/solc/v0.6/src/tests/Foo.sol")),
	}, candidates)
}

func TestSourceResolver_Resolve(t *testing.T) {
	const abiPath = "../../contracts/abi/v0.6/Foo.json"

	t.Run("direct source", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/Foo.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{})

		source, err := resolver.Resolve(resolverBase, abiPath)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/Foo.sol")), source)
	})

	t.Run("falls back to dev", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/dev/Foo.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{})

		source, err := resolver.Resolve(resolverBase, abiPath)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/dev/Foo.sol")), source)
	})

	t.Run("falls back to tests", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/tests/Foo.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{})

		source, err := resolver.Resolve(resolverBase, abiPath)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/tests/Foo.sol")), source)
	})

	t.Run("prefers the direct source over dev", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/Foo.sol", "/repo/contracts/src/v0.6/dev/Foo.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{})

		source, err := resolver.Resolve(resolverBase, abiPath)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/Foo.sol")), source)
	})

	t.Run("missing source names the file", func(t *testing.T) {
		resolver := NewSourceResolver(newFakeFS(), ResolverOptions{})

		_, err := resolver.Resolve(resolverBase, abiPath)
		require.ErrorIs(t, err, ErrMissingSource)

		var missing *MissingSourceError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "Foo.sol", missing.Name)
		assert.Len(t, missing.Candidates, 3)
		assert.Contains(t, err.Error(), "could not find Foo.sol")
	})

	t.Run("skip list excludes the contract", func(t *testing.T) {
		resolver := NewSourceResolver(newFakeFS(), ResolverOptions{Skip: DefaultSkip})

		_, err := resolver.Resolve(resolverBase, "../../contracts/abi/v0.6/OffchainAggregator.json")
		assert.ErrorIs(t, err, ErrSkippedSource)
		assert.NotErrorIs(t, err, ErrMissingSource)
	})

	t.Run("skip list wins over an existing source", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/OffchainAggregator.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{Skip: DefaultSkip})

		_, err := resolver.Resolve(resolverBase, "../../contracts/abi/v0.6/OffchainAggregator.json")
		assert.ErrorIs(t, err, ErrSkippedSource)
	})

	t.Run("custom source extension", func(t *testing.T) {
		fs := newFakeFS("/repo/contracts/src/v0.6/Foo.vy")
		resolver := NewSourceResolver(fs, ResolverOptions{SourceExt: "vy"})

		source, err := resolver.Resolve(resolverBase, abiPath)
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/Foo.vy")), source)
	})

	t.Run("absolute abi path ignores the base directory", func(t *testing.T) {
		fs := newFakeFS("/elsewhere/src/Foo.sol")
		resolver := NewSourceResolver(fs, ResolverOptions{})

		source, err := resolver.Resolve(resolverBase, filepath.FromSlash("/elsewhere/abi/Foo.json"))
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.FromSlash("/elsewhere/src/Foo.sol")), source)
	})
}

func TestSourceResolver_CheckoutUnderDevDirectory(t *testing.T) {
	const base = m.Path("/home/u/dev/repo/core/gethwrappers")

	fs := newFakeFS("/home/u/dev/repo/contracts/src/v0.6/tests/Foo.sol")
	resolver := NewSourceResolver(fs, ResolverOptions{})

	candidates, err := resolver.Candidates(base, "../../contracts/abi/v0.6/Foo.json")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.FromSlash("/home/u/dev/repo/contracts/src/v0.6/tests/Foo.sol")), candidates[2])

	source, err := resolver.Resolve(base, "../../contracts/abi/v0.6/Foo.json")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.FromSlash("/home/u/dev/repo/contracts/src/v0.6/tests/Foo.sol")), source)
}

func TestSourceResolver_OnlyFirstABISegment(t *testing.T) {
	resolver := NewSourceResolver(newFakeFS(), ResolverOptions{})

	candidates, err := resolver.Candidates(resolverBase, "../../contracts/abi/v0.6/abi/Foo.json")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.FromSlash("/repo/contracts/src/v0.6/abi/Foo.sol")), candidates[0])
}

func TestReplaceSegment(t *testing.T) {
	sep := string(filepath.Separator)

	assert.Equal(t, "a"+sep+"src"+sep+"b", replaceSegment("a"+sep+"abi"+sep+"b", "abi", "src"))
	assert.Equal(t, "a"+sep+"abix"+sep+"b", replaceSegment("a"+sep+"abix"+sep+"b", "abi", "src"))
	assert.Equal(t, "src"+sep+"x"+sep+"abi", replaceSegment("abi"+sep+"x"+sep+"abi", "abi", "src"))
}
