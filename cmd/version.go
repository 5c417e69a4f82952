package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const unknownVersion = "(devel)"

// buildInfo is what `fastgen version` reports.
type buildInfo struct {
	Version   string
	Module    string
	GoVersion string
	Revision  string
	Modified  bool
}

func readBuildInfo() buildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return buildInfo{Version: unknownVersion}
	}

	bi := buildInfo{
		Version:   info.Main.Version,
		Module:    info.Main.Path,
		GoVersion: info.GoVersion,
	}
	if bi.Version == "" {
		bi.Version = unknownVersion
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			bi.Revision = setting.Value
		case "vcs.modified":
			bi.Modified = setting.Value == "true"
		}
	}

	return bi
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the fastgen version",
		Long:  "Displays the fastgen build version and VCS revision, the Go toolchain and the configured binding generator.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			bi := readBuildInfo()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(out, "fastgen", bi.Version)

			if bi.Module != "" {
				_, _ = fmt.Fprintln(out, "module:  ", bi.Module)
			}

			if bi.Revision != "" {
				revision := bi.Revision
				if bi.Modified {
					revision += " (modified)"
				}

				_, _ = fmt.Fprintln(out, "revision:", revision)
			}

			if bi.GoVersion != "" {
				_, _ = fmt.Fprintln(out, "go:      ", bi.GoVersion)
			}

			_, _ = fmt.Fprintln(out, "generator:", viper.GetString(generatorKey))
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
