package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huesight/internal/colour"
	"github.com/jmylchreest/huesight/internal/naming"
)

// newNamesCmd builds the taxonomy listing command.
func newNamesCmd() *cobra.Command {
	var namesPreview bool

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List every colour name in the taxonomy",
		Long: `List the full closed vocabulary the classifier can produce,
grayscale bands first, then chromatic names in hue order. With a
terminal (or --preview) each name is shown with a representative
swatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(namesPreview)
		},
	}

	cmd.Flags().BoolVar(&namesPreview, "preview", false, "show colour swatches even when stdout is not a terminal")

	return cmd
}

// runNames executes the names command.
func runNames(preview bool) error {
	showSwatches := preview || term.IsTerminal(int(os.Stdout.Fd()))

	if !showSwatches {
		for _, name := range naming.Names() {
			fmt.Println(name)
		}
		return nil
	}

	var sb strings.Builder
	for _, entry := range naming.Entries() {
		c := representativeColour(entry)
		fmt.Fprintf(&sb, "%s\n", colour.PreviewWithText(c, entry.Name, swatchWidth))
	}
	fmt.Print(sb.String())
	return nil
}

// swatchWidth fits the longest taxonomy name with a margin.
const swatchWidth = 20

// representativeColour converts a taxonomy entry's probe measurement
// back to RGB for swatch rendering.
func representativeColour(e naming.Entry) colour.RGB {
	if e.Hue < 0 {
		l := e.Lightness / 100.0
		return colour.RGB{R: l, G: l, B: l}
	}
	return colour.HSLToRGB(e.Hue/360.0, e.Saturation/100.0, e.Lightness/100.0)
}
