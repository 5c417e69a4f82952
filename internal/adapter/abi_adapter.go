package adapter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/tidwall/gjson"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

// ErrInvalidABI is returned when an ABI file cannot be understood.
var ErrInvalidABI = errors.New("invalid contract ABI")

// ABIAdapter inspects contract interface descriptions.
type ABIAdapter interface {
	// Inspect parses the ABI at path and summarises its contents.
	Inspect(path m.Path) (m.ABISummary, error)
}

// LocalABIAdapter reads ABI files through a SourceFSAdapter. Both raw ABI
// arrays (solc `.abi` output) and compiler artifacts with an "abi" field are
// accepted.
type LocalABIAdapter struct {
	fs SourceFSAdapter
}

// NewLocalABIAdapter constructs a LocalABIAdapter.
func NewLocalABIAdapter(fs SourceFSAdapter) *LocalABIAdapter {
	return &LocalABIAdapter{fs: fs}
}

// Inspect parses the ABI file.
func (a *LocalABIAdapter) Inspect(path m.Path) (m.ABISummary, error) {
	raw, err := a.fs.ReadFile(path)
	if err != nil {
		return m.ABISummary{}, fmt.Errorf("read ABI %s: %w", path, err)
	}

	definition, err := extractABI(raw)
	if err != nil {
		return m.ABISummary{}, fmt.Errorf("%w: %s: %w", ErrInvalidABI, path, err)
	}

	parsed, err := abi.JSON(bytes.NewReader(definition))
	if err != nil {
		return m.ABISummary{}, fmt.Errorf("%w: %s: %w", ErrInvalidABI, path, err)
	}

	return m.ABISummary{
		Constructor: len(parsed.Constructor.Inputs) > 0,
		Methods:     len(parsed.Methods),
		Events:      len(parsed.Events),
		Errors:      len(parsed.Errors),
	}, nil
}

func extractABI(raw []byte) ([]byte, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if doc.IsArray() {
		return raw, nil
	}

	field := doc.Get("abi")
	if !field.Exists() || !field.IsArray() {
		return nil, errors.New(`artifact has no "abi" array`)
	}

	return []byte(field.Raw), nil
}
