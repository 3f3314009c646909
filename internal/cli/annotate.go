package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/logger"
)

func annotateCommand() *cobra.Command {
	var source, output, label, bboxSpec, timestampFormat string
	var margin float64

	cmd := &cobra.Command{
		Use:   "annotate",
		Short: "Draw a bounding box, label and timestamp onto an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := imaging.AnnotateOptions{
				Label:           label,
				Margin:          margin,
				TimestampFormat: timestampFormat,
			}
			if bboxSpec != "" {
				box, err := parseBBox(bboxSpec)
				if err != nil {
					return err
				}
				opts.Box = box
			}

			img, err := imaging.NewCache().Load(source)
			if err != nil {
				return errs.Wrap(errs.KindNotFound, err, "source image not found: %s", source)
			}

			annotated, err := imaging.Annotate(img, opts)
			if err != nil {
				return err
			}

			if output == "" {
				stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
				output = filepath.Join(filepath.Dir(source), stem+"_annotated.png")
			}
			if err := savePNG(output, annotated); err != nil {
				return err
			}
			logger.Infof("saved annotated image to %s", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Input image path")
	cmd.Flags().StringVar(&output, "output", "", "Output image path (default: <source stem>_annotated.png)")
	cmd.Flags().StringVar(&label, "label", "YOLO ROI", "Label text displayed near the bounding box")
	cmd.Flags().StringVar(&bboxSpec, "bbox", "", "Bounding box as x1,y1,x2,y2 in pixels (default: synthetic margin box)")
	cmd.Flags().Float64Var(&margin, "margin", 0.15, "Fractional margin for the synthetic box when --bbox is omitted")
	cmd.Flags().StringVar(&timestampFormat, "timestamp-format", "2006-01-02 15:04:05", "Go time layout for the footer timestamp (empty disables it)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}
