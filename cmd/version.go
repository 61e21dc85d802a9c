package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// devVersion is reported for builds without module version information.
const devVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the ctestfmt build version, module path and Go version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("ctestfmt", devVersion)
				return
			}

			version := info.Main.Version
			if version == "" {
				version = devVersion
			}

			cmd.Println("ctestfmt", version)
			if info.Main.Path != "" {
				cmd.Println("module\t", info.Main.Path)
			}
			cmd.Println("go\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
