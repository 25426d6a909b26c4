package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/1siamBot/spikes/engine/swatch"
)

// writeStrip renders the shade strip and saves it as a PNG
func writeStrip(path string, steps, w, h int) error {
	strip := swatch.Render(steps, swatch.DefaultWidth, swatch.DefaultHeight).Scaled(w, h)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := png.Encode(out, strip.Image); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	fmt.Printf("✓ %d swatches (%dx%d) -> %s\n", strip.Steps, strip.SwatchWidth, strip.SwatchHeight, path)
	return nil
}

func main() {
	var (
		steps  int
		width  int
		height int
		out    string
	)
	cmd := &cobra.Command{
		Use:   "swatches",
		Short: "Write the spike shade strip to a PNG",
		RunE: func(*cobra.Command, []string) error {
			return writeStrip(out, steps, width, height)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 70, "number of swatches")
	cmd.Flags().IntVar(&width, "width", swatch.DefaultWidth, "swatch width after scaling")
	cmd.Flags().IntVar(&height, "height", swatch.DefaultHeight, "swatch height after scaling")
	cmd.Flags().StringVarP(&out, "out", "o", "swatches.png", "output file")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
