package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/logger"
	"github.com/visionkit/yolotools/internal/model"
	"github.com/visionkit/yolotools/internal/summary"
)

func summaryCommand() *cobra.Command {
	var input, output, sortBy string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarise refined detection JSON per class",
		Long:  "Flattens record detections into per-class rows with count, mean and\nmax confidence, prints them as a table and optionally saves .csv or .json.",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := summary.ParseSortKey(sortBy)
			if err != nil {
				return err
			}

			records, err := model.ReadRecords(input)
			if err != nil {
				return err
			}

			rows, err := summary.Summarize(records, key)
			if err != nil {
				return err
			}

			if err := summary.WriteTable(os.Stdout, rows); err != nil {
				return err
			}

			if output != "" {
				if err := summary.Save(output, rows); err != nil {
					return err
				}
				logger.Infof("summary saved to %s", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Refined detection JSON path")
	cmd.Flags().StringVar(&output, "output", "", "Optional output file (.csv or .json); omitted means print only")
	cmd.Flags().StringVar(&sortBy, "sort-by", "num_detections", "Column used to sort the summary: num_detections, mean_confidence or max_confidence")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
