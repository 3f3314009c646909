package main

import (
	"os"

	"github.com/visionkit/yolotools/internal/cli"
	"github.com/visionkit/yolotools/internal/config"
	"github.com/visionkit/yolotools/internal/logger"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	settings := config.Load()

	root := cli.NewRootCommand(settings, cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	if err := root.Execute(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
