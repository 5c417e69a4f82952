package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fastgen.dev/pkg/fastgen/internal/adapter"
	m "fastgen.dev/pkg/fastgen/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default fastgen.yaml configuration file",
		Long: `Create a fastgen.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually.

When a go_generate.go is found in the working directory or a parent, its
location is recorded relative to the working directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			settings := viper.New()
			settings.SetConfigType("yaml")

			if err := settings.MergeConfigMap(viper.AllSettings()); err != nil {
				return fmt.Errorf("failed to collect settings: %w", err)
			}

			directives, err := discoverDirectives()
			if err != nil {
				return err
			}

			if directives != "" {
				settings.Set(directivesKey, directives)
			}

			if err := settings.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "wrote", targetPath)

			if directives != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "directives:", directives)
			}

			return nil
		},
	}
}

// discoverDirectives returns the directive file relative to the working
// directory, or "" when there is none to record.
func discoverDirectives() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := fsAdapter.FindDirectivesRoot(m.Path(wd), defaultDirectivesFile)
	if errors.Is(err, adapter.ErrDirectivesNotFound) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(wd, filepath.Join(string(root), defaultDirectivesFile))
	if err != nil {
		return "", fmt.Errorf("relativize directive file: %w", err)
	}

	return rel, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
