package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const oracleABI = `[
  {"type":"constructor","inputs":[{"name":"link","type":"address"}],"stateMutability":"nonpayable"},
  {"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
  {"type":"function","name":"withdraw","inputs":[{"name":"recipient","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
  {"type":"event","name":"OracleRequest","inputs":[{"name":"specId","type":"bytes32","indexed":true}],"anonymous":false},
  {"type":"error","name":"Unauthorized","inputs":[]}
]`

func TestLocalABIAdapter_Inspect(t *testing.T) {
	adapter := NewLocalABIAdapter(NewLocalSourceFSAdapter())
	root := t.TempDir()

	t.Run("raw ABI array", func(t *testing.T) {
		path := filepath.Join(root, "Oracle.abi")
		writeTestFile(t, path, oracleABI)

		summary, err := adapter.Inspect(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, m.ABISummary{Constructor: true, Methods: 2, Events: 1, Errors: 1}, summary)
	})

	t.Run("artifact with abi field", func(t *testing.T) {
		path := filepath.Join(root, "Oracle.json")
		writeTestFile(t, path, `{"contractName":"Oracle","abi":`+oracleABI+`,"bytecode":"0x00"}`)

		summary, err := adapter.Inspect(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Methods)
		assert.Equal(t, 1, summary.Events)
	})

	t.Run("artifact without abi", func(t *testing.T) {
		path := filepath.Join(root, "NoABI.json")
		writeTestFile(t, path, `{"contractName":"NoABI"}`)

		_, err := adapter.Inspect(m.Path(path))
		require.ErrorIs(t, err, ErrInvalidABI)
	})

	t.Run("not JSON", func(t *testing.T) {
		path := filepath.Join(root, "Garbage.abi")
		writeTestFile(t, path, "pragma solidity ^0.6.0;")

		_, err := adapter.Inspect(m.Path(path))
		require.ErrorIs(t, err, ErrInvalidABI)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := adapter.Inspect(m.Path(filepath.Join(root, "Missing.abi")))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidABI)
	})
}
