package cli

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	jigsaw "github.com/AlexeyTsvetkov/jigsaw-puzzle"
	"github.com/AlexeyTsvetkov/jigsaw-puzzle/utils"
)

// Palettes whose closest two colors are nearer than this in Lab give the
// edge measures little to work with. go-colorful scales L to [0, 1], so
// this is 10 on the usual 0..100 scale.
const lowContrast = 0.1

type inspectOptions struct {
	input   string
	colors  int
	method  string
	swatch  string
	montage string
}

func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a directory of tiles",
		Long: `Report the tile count and size of a directory of tiles together with the
dominant colors of the whole set. Sets whose colors are close together are
hard to reassemble and produce a warning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useConfig(cmd, "colors") {
				opts.colors = c.cfg.Inspect.Colors
			}
			if useConfig(cmd, "method") {
				opts.method = c.cfg.Inspect.Method
			}
			return c.runInspect(cmd.Context(), printer{cmd.OutOrStdout()}, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "directory of tiles")
	cmd.Flags().IntVarP(&opts.colors, "colors", "k", 6, "number of palette colors")
	cmd.Flags().StringVar(&opts.method, "method", "dominant", "palette method: dominant, kmeans")
	cmd.Flags().StringVar(&opts.swatch, "swatch", "", "save the palette as an image")
	cmd.Flags().StringVar(&opts.montage, "montage", "", "save all tiles side by side as an image")
	cmd.MarkFlagRequired("input")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, p printer, opts inspectOptions) error {
	method, err := utils.ParsePaletteMethod(opts.method)
	if err != nil {
		return usageError("%v", err)
	}
	tiles, err := utils.ReadTiles(opts.input)
	if err != nil {
		return fmt.Errorf("load tiles %s: %w", opts.input, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	bg, err := parseColor(c.cfg.Background)
	if err != nil {
		return err
	}
	cols := int(math.Ceil(math.Sqrt(float64(len(tiles)))))
	sheet := jigsaw.Montage(tiles, cols, bg)

	p.keyValue("tiles", len(tiles))
	p.keyValue("tile size", fmt.Sprintf("%dpx", tiles[0].Size()))

	if opts.montage != "" {
		if err := utils.SaveImage(sheet, opts.montage); err != nil {
			return err
		}
		p.file(opts.montage)
	}
	if opts.colors <= 0 {
		return nil
	}

	palette := tilePalette(tiles, opts.colors, method)
	contrast := utils.PaletteContrast(palette)
	c.Logger.Debug("extracted palette", "method", method, "colors", len(palette), "contrast", contrast)

	p.keyValue("palette", method)
	p.palette(palette)
	if len(palette) > 1 && contrast < lowContrast {
		p.warning("low color contrast (%.3f), edges may be ambiguous", contrast)
	}
	if opts.swatch != "" {
		if err := utils.SavePalette(palette, 64, opts.swatch); err != nil {
			return err
		}
		p.file(opts.swatch)
	}
	return nil
}

// tilePalette extracts the palette from all tiles laid out in one row, so
// no background cell is sampled.
func tilePalette(tiles []*jigsaw.Tile, k int, method utils.PaletteMethod) []colorful.Color {
	strip := jigsaw.Montage(tiles, len(tiles), color.Transparent)
	palette := utils.ExtractPalette(strip, k, method)
	utils.SortPaletteByBrightness(palette)
	return palette
}
