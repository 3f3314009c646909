package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCommand(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("yolotools %s\n", build.Version)
			fmt.Printf("  Build time: %s\n", build.BuildTime)
			fmt.Printf("  Git commit: %s\n", build.GitCommit)
		},
	}
}
