package cmd

import (
	"github.com/spf13/cobra"

	"fastgen.dev/pkg/fastgen/internal/domain"
	m "fastgen.dev/pkg/fastgen/internal/model"
)

const listLongDescription = `List the packages declared in the directive file together with the
contract source each one is generated from.

Use --format yaml for output other tools can read.`

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the packages fastgen can build",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			wf := workflowFor(cmd)

			_, catalog, err := loadCatalog(ctx, wf)
			if err != nil {
				return err
			}

			return wf.List(ctx, catalog, domain.ListArgs{Format: m.CatalogFormat(listFormatFlag)})
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, formatFlagName, "f", string(m.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
