package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/logger"
)

func infoCommand() *cobra.Command {
	var source, logPath string
	var gridSize int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report image metadata and pixel statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if gridSize < 1 {
				return errs.New(errs.KindConfiguration, "grid size must be at least 1, got %d", gridSize)
			}

			cache := imaging.NewCache()
			info, err := imaging.LoadInfo(cache, source)
			if err != nil {
				// A single missing source is fatal here: there is no
				// batch to make progress on.
				return errs.Wrap(errs.KindNotFound, err, "source image not found: %s", source)
			}
			img, err := cache.Load(source)
			if err != nil {
				return err
			}

			report := imaging.BuildPixelReport(img, gridSize)
			rendered := report.Render(source)

			fmt.Println(rendered)
			fmt.Printf("Format: %s (%s, alpha: %t, %d bytes on disk)\n",
				info.Format, info.ColorDepth, info.HasAlpha, info.FileSizeBytes)

			if logPath != "-" {
				if err := writeReportFile(logPath, rendered); err != nil {
					logger.Warnf("failed to write report file: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Path to the source image")
	cmd.Flags().IntVar(&gridSize, "grid-size", 5, "Number of sample points per axis for the pixel grid (>=1)")
	cmd.Flags().StringVar(&logPath, "log", "logs/pixel_report.txt", "Destination file for the report ('-' disables logging)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func writeReportFile(path, report string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(report), 0o644)
}
