package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huesight/internal/classify"
	"github.com/jmylchreest/huesight/internal/colour"
	"github.com/jmylchreest/huesight/internal/image"
	"github.com/jmylchreest/huesight/internal/sampler"
)

// newClassifyCmd builds the one-shot classify command.
func newClassifyCmd() *cobra.Command {
	var (
		classifyAt      string
		classifyRadius  int
		classifyPreview bool
	)

	cmd := &cobra.Command{
		Use:   "classify <colour|image>",
		Short: "Name a single colour or image region",
		Long: `Classify one colour and print its everyday name.

The argument is either a hex colour or an image path/URL. For images
the sample is the average of a pixel neighbourhood, taken at the image
centre unless --at is given.

One-shot classification runs with white-balance adaptation disabled;
a single sample carries no lighting history to adapt to.

Supported image formats: JPEG, PNG, GIF, WebP, BMP, TIFF

Examples:
  # Name a hex colour
  huesight classify "#2e8b57"

  # Name the colour at the centre of an image
  huesight classify photo.jpg

  # Name the colour at a specific pixel, averaging a 9x9 region
  huesight classify --at 120,340 --radius 4 photo.jpg

  # Fetch and classify a remote image
  huesight classify https://example.com/swatch.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, args[0], classifyAt, classifyRadius, classifyPreview)
		},
	}

	cmd.Flags().StringVar(&classifyAt, "at", "", "pixel coordinate to sample, as x,y (default: image centre)")
	cmd.Flags().IntVar(&classifyRadius, "radius", sampler.DefaultRadius, "sample neighbourhood half-width in pixels")
	cmd.Flags().BoolVar(&classifyPreview, "preview", false, "show a colour swatch even when stdout is not a terminal")

	return cmd
}

// runClassify executes the classify command.
func runClassify(cmd *cobra.Command, target, at string, radius int, preview bool) error {
	logger := newLogger(cmd)

	sample, err := resolveSample(target, at, radius)
	if err != nil {
		return err
	}
	logger.Debug("sampled colour", "rgb", sample.String())

	engine := classify.New(classify.Config{Adaptive: false})
	name := engine.Classify(sample)

	if preview || term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%s  %s  %s\n", colour.Preview(sample, 4), name, sample.Hex())
	} else {
		fmt.Println(name)
	}

	return nil
}

// resolveSample turns the command argument into one RGB sample:
// a hex literal directly, anything else as an image to region-sample.
func resolveSample(target, at string, radius int) (colour.RGB, error) {
	if c, err := colour.ParseHex(target); err == nil {
		return c, nil
	}

	if err := image.ValidateImagePath(target); err != nil {
		return colour.RGB{}, fmt.Errorf("argument is neither a hex colour nor a readable image: %w", err)
	}

	img, err := image.NewSmartLoader().Load(target)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("failed to load image: %w", err)
	}

	if at == "" {
		return sampler.CenterAverage(img, radius), nil
	}

	x, y, err := parsePoint(at)
	if err != nil {
		return colour.RGB{}, err
	}
	return sampler.RegionAverage(img, x, y, radius), nil
}

// parsePoint parses an "x,y" coordinate pair.
func parsePoint(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q: %w", parts[0], err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q: %w", parts[1], err)
	}
	return x, y, nil
}
