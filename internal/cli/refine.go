package cli

import (
	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/logger"
	"github.com/visionkit/yolotools/internal/model"
	"github.com/visionkit/yolotools/internal/refine"
)

func refineCommand() *cobra.Command {
	var opts refine.Options
	var input, output string

	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Filter detection JSON by confidence and class",
		Long:  "Reads exported records, keeps detections passing the confidence gate\nand the class filter, and writes new records with refinement metadata.",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := model.ReadRecords(input)
			if err != nil {
				return err
			}

			refined := refine.Refine(records, opts)
			if len(refined) == 0 {
				logger.Warnf("no records remaining after refinement")
			}

			if err := model.WriteRecords(output, refined); err != nil {
				return err
			}
			logger.Infof("saved %d refined records to %s", len(refined), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Source JSON produced by the export command")
	cmd.Flags().StringVar(&output, "output", "", "Destination JSON file")
	cmd.Flags().Float64Var(&opts.MinConf, "min-conf", 0.0, "Minimum confidence threshold (inclusive)")
	cmd.Flags().StringVar(&opts.Classes, "classes", "", "Comma-separated class filter (accepts names and/or numeric ids)")
	cmd.Flags().BoolVar(&opts.DropEmpty, "drop-empty", false, "Skip images with zero detections after filtering")
	cmd.Flags().BoolVar(&opts.SortDesc, "sort-desc", false, "Sort detections by confidence descending (default keeps original order)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
