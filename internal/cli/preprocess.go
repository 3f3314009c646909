package cli

import (
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/visionkit/yolotools/internal/errs"
	imgpkg "github.com/visionkit/yolotools/internal/imaging"
	"github.com/visionkit/yolotools/internal/logger"
)

func preprocessCommand() *cobra.Command {
	var source, outputDir, thresholds string
	var opts imgpkg.PreprocessOptions

	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Run the resize -> grayscale -> blur -> edges chain on an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high, err := parseThresholdPair(thresholds)
			if err != nil {
				return err
			}
			opts.CannyLow, opts.CannyHigh = low, high

			img, err := imgpkg.NewCache().Load(source)
			if err != nil {
				return errs.Wrap(errs.KindNotFound, err, "source image not found: %s", source)
			}

			result, err := imgpkg.Preprocess(img, opts)
			if err != nil {
				return err
			}

			outputs := []struct {
				name string
				img  image.Image
			}{
				{"01_resized.png", result.Resized},
				{"02_gray.png", result.Gray},
				{"03_blur.png", result.Blurred},
				{"04_edges.png", result.Edges},
			}
			for _, out := range outputs {
				path := filepath.Join(outputDir, out.name)
				if err := savePNG(path, out.img); err != nil {
					return err
				}
				logger.Infof("saved %s", path)
			}
			logger.Infof("strong edge ratio: %.4f", result.EdgeRatio)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Input image path")
	cmd.Flags().StringVar(&outputDir, "output-dir", "outputs/preprocess", "Directory where intermediate outputs are stored")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0.6, "Resize scale factor (0 < scale <= 1.5)")
	cmd.Flags().IntVar(&opts.BlurKernel, "blur-kernel", 9, "Gaussian blur kernel size (odd positive integer)")
	cmd.Flags().StringVar(&thresholds, "canny-thresholds", "80,160", "Low,high thresholds for edge detection (comma separated)")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func savePNG(path string, img image.Image) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return errs.Wrap(errs.KindIO, err, "failed to save %s", path)
	}
	return nil
}
