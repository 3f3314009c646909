package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/errs"
	"github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/logger"
)

func maskCommand() *cobra.Command {
	var source, outputDir, lowerSpec, upperSpec string

	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Apply an HSV color mask to isolate a region",
		Long:  "Keeps pixels whose HSV value falls inside the given range and blacks\nout the rest. Bounds use the OpenCV byte convention: hue 0-179,\nsaturation and value 0-255.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lower, err := parseHSVTriplet(lowerSpec)
			if err != nil {
				return err
			}
			upper, err := parseHSVTriplet(upperSpec)
			if err != nil {
				return err
			}

			img, err := imaging.NewCache().Load(source)
			if err != nil {
				return errs.Wrap(errs.KindNotFound, err, "source image not found: %s", source)
			}

			result, err := imaging.MaskHSV(img, lower, upper)
			if err != nil {
				return err
			}

			maskPath := filepath.Join(outputDir, "mask.png")
			maskedPath := filepath.Join(outputDir, "masked.png")
			if err := savePNG(maskPath, result.Mask); err != nil {
				return err
			}
			if err := savePNG(maskedPath, result.Masked); err != nil {
				return err
			}

			logger.Infof("saved %s and %s (coverage %.2f%%)", maskPath, maskedPath, result.Coverage*100)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Input image path")
	cmd.Flags().StringVar(&lowerSpec, "lower-hsv", "", "Lower HSV bound as comma-separated ints (e.g. 35,80,80)")
	cmd.Flags().StringVar(&upperSpec, "upper-hsv", "", "Upper HSV bound as comma-separated ints (e.g. 90,255,255)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "outputs/mask", "Directory for saving the mask results")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("lower-hsv")
	_ = cmd.MarkFlagRequired("upper-hsv")

	return cmd
}
