package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const helperEnv = "FASTGEN_TEST_HELPER_GENERATOR"

// TestHelperGenerator is not a real test. It stands in for abigen when the
// test binary is re-executed by the generator tests below.
func TestHelperGenerator(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	flags := map[string]string{}
	for i := 0; i+1 < len(args); i += 2 {
		flags[args[i]] = args[i+1]
	}

	if flags["-pkg"] == "broken_wrapper" {
		fmt.Fprintln(os.Stderr, "Fatal: failed to compile contract")
		os.Exit(3)
	}

	content := fmt.Sprintf("package %s\n\n// source: %s\n", flags["-pkg"], flags["-sol"])
	if err := os.WriteFile(flags["-out"], []byte(content), 0o600); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(4)
	}

	fmt.Println("generated", flags["-pkg"])
	os.Exit(0)
}

func helperArgs(source, pkg, out string) GeneratorArgs {
	return GeneratorArgs{
		Binary:  os.Args[0],
		Extra:   []string{"-test.run=TestHelperGenerator", "--"},
		Source:  m.Path(source),
		Package: pkg,
		Out:     m.Path(out),
	}
}

func TestLocalGeneratorAdapter_Command(t *testing.T) {
	t.Run("default binary", func(t *testing.T) {
		adapter := NewLocalGeneratorAdapter("")

		got := adapter.Command(GeneratorArgs{
			Source:  "/repo/contracts/src/v0.6/Oracle.sol",
			Package: "oracle_wrapper",
			Out:     "/repo/gethwrappers/generated/oracle_wrapper/oracle_wrapper.go",
		})

		assert.Equal(t, []string{
			"abigen",
			"-sol", "/repo/contracts/src/v0.6/Oracle.sol",
			"-pkg", "oracle_wrapper",
			"-out", "/repo/gethwrappers/generated/oracle_wrapper/oracle_wrapper.go",
		}, got)
	})

	t.Run("override binary and extra args", func(t *testing.T) {
		adapter := NewLocalGeneratorAdapter("abigen")

		got := adapter.Command(GeneratorArgs{
			Binary:  "/usr/local/bin/abigen-1.10",
			Extra:   []string{"--v2"},
			Source:  "A.sol",
			Package: "a",
			Out:     "a.go",
		})

		assert.Equal(t, []string{"/usr/local/bin/abigen-1.10", "--v2", "-sol", "A.sol", "-pkg", "a", "-out", "a.go"}, got)
	})
}

func TestLocalGeneratorAdapter_Generate_Success(t *testing.T) {
	t.Setenv(helperEnv, "1")

	adapter := NewLocalGeneratorAdapter("")
	out := filepath.Join(t.TempDir(), "oracle_wrapper.go")

	output, err := adapter.Generate(context.Background(), helperArgs("/src/Oracle.sol", "oracle_wrapper", out))
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "generated oracle_wrapper")

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "package oracle_wrapper")
	assert.Contains(t, string(written), "/src/Oracle.sol")
}

func TestLocalGeneratorAdapter_Generate_Failure(t *testing.T) {
	t.Setenv(helperEnv, "1")

	adapter := NewLocalGeneratorAdapter("")
	out := filepath.Join(t.TempDir(), "broken_wrapper.go")

	output, err := adapter.Generate(context.Background(), helperArgs("/src/Broken.sol", "broken_wrapper", out))
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "got %T", err)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, output, "failed to compile contract")
}

func TestLocalGeneratorAdapter_Generate_MissingBinary(t *testing.T) {
	adapter := NewLocalGeneratorAdapter(filepath.Join(t.TempDir(), "no-such-abigen"))

	_, err := adapter.Generate(context.Background(), GeneratorArgs{Source: "A.sol", Package: "a", Out: "a.go"})
	require.Error(t, err)
}

func TestQuoteCommand(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want string
	}{
		{"plain", []string{"abigen", "-sol", "/src/A.sol"}, "abigen -sol /src/A.sol"},
		{"space", []string{"abigen", "-sol", "/my src/A.sol"}, "abigen -sol '/my src/A.sol'"},
		{"semicolon", []string{"abigen", "-pkg", "a;rm"}, "abigen -pkg 'a;rm'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteCommand(tt.argv))
		})
	}
}
