package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const directivesFixture = `// Package gethwrappers provides tools for wrapping solidity contracts.
package gethwrappers

//go:generate go run ./generation/generate/wrap.go ../../contracts/solc/v0.6/Flux/abi/FluxAggregator.json flux_aggregator_wrapper
//go:generate go run ./generation/generate/wrap.go ../../contracts/solc/v0.8/VRF/abi/VRFCoordinator.json vrf_coordinator

//go:generate mockery --quiet --name FluxAggregatorInterface
//go:generate go run ./generation/generate_phb/wrap_phb.go ../../contracts/solc/v0.8/Foo/abi/Foo.json foo
`

func collectDirectives(t *testing.T, src, marker string) ([]m.Directive, error) {
	t.Helper()

	var directives []m.Directive

	for directive, err := range ScanDirectives(strings.NewReader(src), "go_generate.go", marker) {
		if err != nil {
			return directives, err
		}

		directives = append(directives, directive)
	}

	return directives, nil
}

func TestScanDirectives(t *testing.T) {
	t.Run("yields matching lines in order", func(t *testing.T) {
		directives, err := collectDirectives(t, directivesFixture, DefaultMarker)
		require.NoError(t, err)
		require.Len(t, directives, 2)

		assert.Equal(t, m.Directive{
			File:    "go_generate.go",
			Line:    4,
			ABIPath: "../../contracts/solc/v0.6/Flux/abi/FluxAggregator.json",
			Package: "flux_aggregator_wrapper",
		}, directives[0])
		assert.Equal(t, "vrf_coordinator", directives[1].Package)
		assert.Equal(t, 5, directives[1].Line)
	})

	t.Run("file without marker yields nothing", func(t *testing.T) {
		directives, err := collectDirectives(t, "package x\n\n//go:generate mockery\n", DefaultMarker)
		require.NoError(t, err)
		assert.Empty(t, directives)
	})

	t.Run("extra whitespace around arguments", func(t *testing.T) {
		src := "//go:generate go run ./generation/generate/wrap.go \t a/abi/A.json \t  a_wrapper   \n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, "a/abi/A.json", directives[0].ABIPath)
		assert.Equal(t, "a_wrapper", directives[0].Package)
	})

	t.Run("splits at the last marker occurrence", func(t *testing.T) {
		src := "// go run ./generation/generate/wrap.go go run ./generation/generate/wrap.go a/abi/A.json a\n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, "a/abi/A.json", directives[0].ABIPath)
	})

	t.Run("quotes are part of the token", func(t *testing.T) {
		src := `//go:generate go run ./generation/generate/wrap.go a/abi/Owner's.json "a"` + "\n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, "a/abi/Owner's.json", directives[0].ABIPath)
		assert.Equal(t, `"a"`, directives[0].Package)
	})

	t.Run("dollar signs are kept verbatim", func(t *testing.T) {
		t.Setenv("FASTGEN_SCAN_VAR", "expanded")

		src := "//go:generate go run ./generation/generate/wrap.go a/abi/$FASTGEN_SCAN_VAR.json ${HOME}_x\n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, "a/abi/$FASTGEN_SCAN_VAR.json", directives[0].ABIPath)
		assert.Equal(t, "${HOME}_x", directives[0].Package)
	})

	t.Run("trailing comment counts as tokens", func(t *testing.T) {
		src := "//go:generate go run ./generation/generate/wrap.go a/abi/A.json a # trailing note\n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.ErrorIs(t, err, ErrMalformedDirective)
		assert.Empty(t, directives)

		var directiveErr *DirectiveError
		require.ErrorAs(t, err, &directiveErr)
		assert.Equal(t, 5, directiveErr.Tokens)
	})

	t.Run("too few arguments is fatal", func(t *testing.T) {
		src := "//go:generate go run ./generation/generate/wrap.go a/abi/A.json b\n" +
			"//go:generate go run ./generation/generate/wrap.go a/abi/B.json\n" +
			"//go:generate go run ./generation/generate/wrap.go a/abi/C.json c\n"

		directives, err := collectDirectives(t, src, DefaultMarker)
		require.Error(t, err)
		assert.Len(t, directives, 1)
		assert.ErrorIs(t, err, ErrMalformedDirective)

		var directiveErr *DirectiveError
		require.True(t, errors.As(err, &directiveErr))
		assert.Equal(t, 2, directiveErr.Line)
		assert.Equal(t, 1, directiveErr.Tokens)
		assert.Equal(t, m.Path("go_generate.go"), directiveErr.File)
		assert.Contains(t, err.Error(), "go_generate.go:2")
	})

	t.Run("too many arguments is fatal", func(t *testing.T) {
		src := "//go:generate go run ./generation/generate/wrap.go a/abi/A.json a extra\n"

		_, err := collectDirectives(t, src, DefaultMarker)
		require.ErrorIs(t, err, ErrMalformedDirective)

		var directiveErr *DirectiveError
		require.ErrorAs(t, err, &directiveErr)
		assert.Equal(t, 3, directiveErr.Tokens)
	})

	t.Run("empty marker", func(t *testing.T) {
		_, err := collectDirectives(t, directivesFixture, "")
		assert.ErrorIs(t, err, ErrEmptyMarker)
	})

	t.Run("custom marker", func(t *testing.T) {
		directives, err := collectDirectives(t, directivesFixture, "go run ./generation/generate_phb/wrap_phb.go")
		require.NoError(t, err)
		require.Len(t, directives, 1)
		assert.Equal(t, "foo", directives[0].Package)
	})

	t.Run("consumer can stop early", func(t *testing.T) {
		count := 0

		for range ScanDirectives(strings.NewReader(directivesFixture), "go_generate.go", DefaultMarker) {
			count++
			break
		}

		assert.Equal(t, 1, count)
	})
}
