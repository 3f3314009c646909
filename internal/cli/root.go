// Package cli wires the pipeline stages and image utilities into the
// yolotools command tree.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/visionkit/yolotools/internal/config"
	"github.com/visionkit/yolotools/internal/logger"
)

// BuildInfo carries the ldflags-injected version identifiers.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// NewRootCommand assembles the root command and all subcommands.
func NewRootCommand(settings *config.Settings, build BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:     "yolotools",
		Short:   "Detection-record pipeline and image utilities",
		Long:    "yolotools exports object-detection annotations to structured JSON,\nrefines them by confidence and class, and summarises them per class.\nIt also ships the small image utilities the workflow needs.",
		Version: build.Version,
		// Errors are logged once in main with proper levels.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	root.PersistentFlags().StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn or error")
	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		logger.Errorf("failed to bind flags: %v", err)
	}

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.Setup(settings.LogLevel, settings.Debug)
	}

	root.AddCommand(
		exportCommand(),
		refineCommand(),
		summaryCommand(),
		infoCommand(),
		preprocessCommand(),
		maskCommand(),
		annotateCommand(),
		versionCommand(build),
	)
	return root
}
