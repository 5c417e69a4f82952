package model

// CatalogFormat selects how a catalog listing is rendered.
type CatalogFormat string

const (
	// FormatTable renders the two-column package/source table.
	FormatTable CatalogFormat = "table"
	// FormatYAML renders the catalog as a YAML sequence.
	FormatYAML CatalogFormat = "yaml"
)

// Usage carries what the usage screen needs besides the catalog itself.
type Usage struct {
	Directives Path
	Unknown    []string
}

// Job is one planned generator invocation.
type Job struct {
	Package string
	ABIPath Path
	Source  Path
	Out     Path
	Command []string

	// CommandLine is Command quoted for display.
	CommandLine string
}

// ABISummary describes the contract interface found in an ABI file.
type ABISummary struct {
	Constructor bool
	Methods     int
	Events      int
	Errors      int
}
