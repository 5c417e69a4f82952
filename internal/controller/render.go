package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	m "fastgen.dev/pkg/fastgen/internal/model"
)

const (
	packageHeader = "Package name"
	sourceHeader  = "Contract Source"

	// columnMargin separates the package column from the source column.
	columnMargin = "    "
)

const usageBody = `Usage: fastgen [flags] PACKAGE [PACKAGE...]

Regenerates the Go bindings of each PACKAGE straight from its Solidity
source with abigen, skipping the full contract compilation pipeline.
Packages are generated in the order given and the first failure stops the
run. Output goes to generated/PACKAGE/PACKAGE.go next to the directive file.
Packages named list, init, version, help or completion cannot be generated:
those names run the fastgen subcommand of the same name.
`

// catalogDocument is the YAML shape of a catalog listing.
type catalogDocument struct {
	Packages []m.Entry `yaml:"packages"`
}

func usageText(usage m.Usage) string {
	var b strings.Builder

	b.WriteString(usageBody)
	b.WriteString("\n")

	if len(usage.Unknown) > 0 {
		fmt.Fprintf(&b, "Unknown package(s): %s\n\n", strings.Join(usage.Unknown, ", "))
	}

	b.WriteString("Here is the list of packages you can build. (You can add more by\n")
	fmt.Fprintf(&b, "updating %s)\n\n", usage.Directives)

	return b.String()
}

func renderCatalogTable(w io.Writer, catalog *m.Catalog) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{packageHeader, sourceHeader})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderLine(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("-")
	table.SetTablePadding(columnMargin)
	table.SetNoWhiteSpace(true)

	for _, entry := range catalog.Entries() {
		table.Append([]string{entry.Package, string(entry.Source)})
	}

	table.Render()

	_, _ = io.WriteString(w, trimTrailingSpace(buf.String()))
}

// trimTrailingSpace drops the padding tablewriter leaves after the last
// column.
func trimTrailingSpace(text string) string {
	lines := strings.SplitAfter(text, "\n")
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		lines[i] = strings.TrimRight(body, " \t") + line[len(body):]
	}

	return strings.Join(lines, "")
}

func renderCatalogYAML(w io.Writer, catalog *m.Catalog) error {
	entries := catalog.Entries()
	if entries == nil {
		entries = []m.Entry{}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(catalogDocument{Packages: entries}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	return encoder.Close()
}

func renderCatalog(w io.Writer, catalog *m.Catalog, format m.CatalogFormat) error {
	switch format {
	case m.FormatYAML:
		return renderCatalogYAML(w, catalog)
	case m.FormatTable, "":
		renderCatalogTable(w, catalog)
		return nil
	default:
		return fmt.Errorf("unknown catalog format %q", format)
	}
}

func formatABISummary(job m.Job, summary m.ABISummary) string {
	constructor := "no constructor"
	if summary.Constructor {
		constructor = "constructor"
	}

	return fmt.Sprintf("%s: %d methods, %d events, %d errors, %s",
		job.Package, summary.Methods, summary.Events, summary.Errors, constructor)
}
