package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"planesteg/internal/bits"
	"planesteg/pkg/config"
	"planesteg/pkg/filter"
	planestegImage "planesteg/pkg/image"
	"planesteg/pkg/model"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	ErrInvalidColor = errors.New("color must have exactly 3 components: r,g,b")
)

func ImageCommands(a *app) *cobra.Command {
	imageCmd := &cobra.Command{
		Use:     "image",
		Short:   "Hides images inside other images, reveals them and applies color filters",
		Example: "planesteg image embed --cover cover.png --hidden secret.png --output-file composite.png",
	}

	imageCmd.AddCommand(embedImageCommand(a), revealImageCommand(a), filterImageCommand(a))
	return imageCmd
}

func addPngCompressionFlag(cmd *cobra.Command) {
	cmd.Flags().String(pngCompressionKey, "default", "Compression for output png. Options are default, none, fast, best")
}

type embedImageOpts struct {
	coverImage  string
	hiddenImage string
	outputImage string
}

func embedImageCommand(a *app) *cobra.Command {
	opts := embedImageOpts{}

	embedCmd := &cobra.Command{
		Use:     "embed",
		Example: "planesteg image embed --cover cover.png --hidden secret.png --output-file composite.png",
		Short:   "Hide an image inside the 3 least significant bits of another image of the same size",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EmbedImageFiles(cmd.Context(), cmd.OutOrStdout(), opts.coverImage, opts.hiddenImage, opts.outputImage, a.codecConfig())
		},
	}

	embedCmd.Flags().StringVar(&opts.coverImage, "cover", "", "Image that will carry the hidden image, the output looks like it")
	embedCmd.Flags().StringVar(&opts.hiddenImage, "hidden", "", "Image to hide, only its 3 most significant bits per channel are kept")
	embedCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the composite image, the extension picks the format (png, bmp, tiff)")
	addPngCompressionFlag(embedCmd)

	MarkFlagsRequired(embedCmd, "cover", "hidden", "output-file")

	return embedCmd
}

func EmbedImageFiles(ctx context.Context, out io.Writer, coverPath, hiddenPath, outputPath string, iConfig config.CodecConfig) error {
	format, err := planestegImage.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	s := NewSpinner(out)
	setStage(s, "Reading source images")
	s.Start()
	defer s.Stop()

	cover, coverFile, err := readImageFile(coverPath)
	if err != nil {
		return err
	}
	hidden, hiddenFile, err := readImageFile(hiddenPath)
	if err != nil {
		return err
	}

	setStage(s, "Setting up embedder")
	embedder, err := planestegImage.NewImageEmbedder(cover, hidden, iConfig)
	if err != nil {
		return err
	}

	setStage(s, "Embedding image")
	composite, err := embedder.Embed(ctx)
	if err != nil {
		return err
	}

	setStage(s, "Writing output image")
	outputFile, err := writeImageFile(outputPath, format, composite, embedder.WriteEncoded)
	if err != nil {
		return err
	}
	s.Stop()

	stats := embedder.Stats()
	printImageFiles(out, coverFile, hiddenFile, outputFile)
	printStages(out,
		stage{"setup", stats.Setup},
		stage{"embedding", stats.Embedding},
		stage{"output image encoding", stats.OutputImageEncoding},
	)
	return nil
}

type revealImageOpts struct {
	sourceImage string
	outputImage string
}

func revealImageCommand(a *app) *cobra.Command {
	opts := revealImageOpts{}

	revealCmd := &cobra.Command{
		Use:     "reveal",
		Example: "planesteg image reveal --source composite.png --output-file revealed.png",
		Short:   "Reveal the image hidden in the 3 least significant bits of an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RevealImageFile(cmd.Context(), cmd.OutOrStdout(), opts.sourceImage, opts.outputImage, a.codecConfig())
		},
	}

	revealCmd.Flags().StringVar(&opts.sourceImage, "source", "", "Image generated by planesteg image embed")
	revealCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the revealed image, the extension picks the format (png, bmp, tiff)")
	addPngCompressionFlag(revealCmd)

	MarkFlagsRequired(revealCmd, "source", "output-file")

	return revealCmd
}

func RevealImageFile(ctx context.Context, out io.Writer, sourcePath, outputPath string, iConfig config.CodecConfig) error {
	format, err := planestegImage.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	s := NewSpinner(out)
	setStage(s, "Reading source image")
	s.Start()
	defer s.Stop()

	source, sourceFile, err := readImageFile(sourcePath)
	if err != nil {
		return err
	}

	revealer, err := planestegImage.NewImageRevealer(source, iConfig)
	if err != nil {
		return err
	}

	setStage(s, "Revealing image")
	revealed, err := revealer.Reveal(ctx)
	if err != nil {
		return err
	}

	setStage(s, "Writing output image")
	outputFile, err := writeImageFile(outputPath, format, revealed, revealer.WriteEncoded)
	if err != nil {
		return err
	}
	s.Stop()

	stats := revealer.Stats()
	printImageFiles(out, sourceFile, outputFile)
	printStages(out,
		stage{"revealing", stats.Revealing},
		stage{"output image encoding", stats.OutputImageEncoding},
	)
	return nil
}

type filterImageOpts struct {
	sourceImage string
	outputImage string
	filterName  string
	threshold   uint8
	row         int
	color       []int
}

func (o filterImageOpts) toFilterOptions() (filter.Options, error) {
	color, err := parseColor(o.color)
	if err != nil {
		return filter.Options{}, err
	}
	return filter.Options{
		Threshold: o.threshold,
		Row:       o.row,
		Color:     color,
	}, nil
}

func filterImageCommand(a *app) *cobra.Command {
	opts := filterImageOpts{}

	filterCmd := &cobra.Command{
		Use:     "filter",
		Example: "planesteg image filter --source photo.png --output-file line.png --filter line --row 10 --color 255,0,0",
		Short:   "Apply a color filter to an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			filterOpts, err := opts.toFilterOptions()
			if err != nil {
				return err
			}
			return FilterImageFile(cmd.Context(), cmd.OutOrStdout(), opts.sourceImage, opts.outputImage, opts.filterName, filterOpts, a.codecConfig())
		},
	}

	defaults := filter.DefaultOptions()
	filterCmd.Flags().StringVar(&opts.sourceImage, "source", "", "Image to filter")
	filterCmd.Flags().StringVar(&opts.outputImage, "output-file", "", "Name for the filtered image, the extension picks the format (png, bmp, tiff)")
	filterCmd.Flags().StringVar(&opts.filterName, "filter", "", fmt.Sprintf("Filter to apply, one of %s", strings.Join(filter.Names(), ", ")))
	filterCmd.Flags().Uint8Var(&opts.threshold, "threshold", defaults.Threshold, "Channels up to this value turn black with the threshold filter, the rest turn white")
	filterCmd.Flags().IntVar(&opts.row, "row", defaults.Row, "Row the line filter draws on")
	filterCmd.Flags().IntSliceVar(&opts.color, "color", []int{int(defaults.Color.R), int(defaults.Color.G), int(defaults.Color.B)}, "Color of the line drawn by the line filter, as r,g,b")
	addPngCompressionFlag(filterCmd)

	MarkFlagsRequired(filterCmd, "source", "output-file", "filter")

	return filterCmd
}

func FilterImageFile(ctx context.Context, out io.Writer, sourcePath, outputPath, filterName string, opts filter.Options, iConfig config.CodecConfig) error {
	format, err := planestegImage.FormatFromPath(outputPath)
	if err != nil {
		return err
	}

	s := NewSpinner(out)
	setStage(s, "Reading source image")
	s.Start()
	defer s.Stop()

	source, sourceFile, err := readImageFile(sourcePath)
	if err != nil {
		return err
	}

	var stats model.FilterStats
	setStage(s, "Applying filter "+filterName)
	filterStart := time.Now()
	filtered, err := filter.Apply(ctx, source, filterName, opts, iConfig)
	if err != nil {
		return err
	}
	stats.Filtering = time.Since(filterStart)

	setStage(s, "Writing output image")
	encodeStart := time.Now()
	outputFile, err := writeImageFile(outputPath, format, filtered, func(w io.Writer, format planestegImage.Format) error {
		return planestegImage.Encode(w, filtered, format, iConfig.PngCompressionLevel)
	})
	if err != nil {
		return err
	}
	stats.OutputImageEncoding = time.Since(encodeStart)
	s.Stop()

	printImageFiles(out, sourceFile, outputFile)
	printStages(out,
		stage{"filtering", stats.Filtering},
		stage{"output image encoding", stats.OutputImageEncoding},
	)
	return nil
}

func parseColor(components []int) (planestegImage.RGB, error) {
	if len(components) != 3 {
		return planestegImage.RGB{}, fmt.Errorf("%w, got %d", ErrInvalidColor, len(components))
	}

	var channels [3]uint8
	for i, c := range components {
		v, err := bits.Channel(c)
		if err != nil {
			return planestegImage.RGB{}, err
		}
		channels[i] = v
	}
	return planestegImage.RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}
