package cli

import (
	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/export"
	"github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/logger"
	"github.com/visionkit/yolotools/internal/model"
)

func exportCommand() *cobra.Command {
	var opts export.Options
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export annotation files to detection JSON",
		Long:  "Walks a run directory, pairs each annotation file with its image and\nwrites one record per image in the canonical JSON schema.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := export.Export(imaging.NewCache(), opts)
			if err != nil {
				return err
			}
			if err := model.WriteRecords(output, records); err != nil {
				return err
			}
			logger.Infof("exported %d image entries to %s", len(records), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.RunsDir, "runs-dir", "", "Directory containing detection outputs (images + labels)")
	cmd.Flags().StringVar(&output, "output", "", "Destination JSON file")
	cmd.Flags().StringVar(&opts.LabelsDir, "labels-dir", "", "Explicit labels directory (default: <runs-dir>/labels or first nested labels directory)")
	cmd.Flags().StringVar(&opts.ClassNames, "class-names", "", "Optional text file with class names (one per line, index = class id)")
	cmd.Flags().BoolVar(&opts.RelativePaths, "relative-paths", false, "Store image_path relative to --runs-dir instead of resolved paths")
	_ = cmd.MarkFlagRequired("runs-dir")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
