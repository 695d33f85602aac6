package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	jigsaw "github.com/AlexeyTsvetkov/jigsaw-puzzle"
	"github.com/AlexeyTsvetkov/jigsaw-puzzle/utils"
)

type solveOptions struct {
	input      string
	output     string
	width      int
	height     int
	measure    string
	workers    int
	background string
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Reassemble a directory of tiles into one image",
		Long: `Reassemble the png tiles of a directory into a width x height picture.

All tiles must be square and of equal size. Tiles that do not fit the
result are left out; cells no tile could fill show the background color.

Measures: ` + strings.Join(jigsaw.MeasureNames(), ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useConfig(cmd, "measure") {
				opts.measure = c.cfg.Measure
			}
			if useConfig(cmd, "workers") {
				opts.workers = c.cfg.Workers
			}
			if useConfig(cmd, "background") {
				opts.background = c.cfg.Background
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), printer{cmd.OutOrStdout()}, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "directory of tiles")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "where to save the solved image")
	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "puzzle width in tiles")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "puzzle height in tiles")
	cmd.Flags().StringVarP(&opts.measure, "measure", "m", "", "dissimilarity measure (default rgb-mgc)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "goroutines scoring tile pairs (0 uses all CPUs)")
	cmd.Flags().StringVar(&opts.background, "background", "", "hex color of unfilled cells (default #000000)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func (o solveOptions) validate() error {
	if o.width == 0 || o.height == 0 {
		return usageError("--width and --height are required for solving")
	}
	if o.width < 0 || o.height < 0 {
		return usageError("--width and --height must be positive integers")
	}
	if info, err := os.Stat(o.input); err != nil || !info.IsDir() {
		return usageError("--input must be an existing directory")
	}
	if o.workers < 0 {
		return usageError("--workers must not be negative")
	}
	return nil
}

func (c *CLI) runSolve(ctx context.Context, p printer, opts solveOptions) error {
	measure, err := jigsaw.MeasureByName(opts.measure)
	if err != nil {
		return err
	}
	bg, err := parseColor(opts.background)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	tiles, err := utils.ReadTiles(opts.input)
	if err != nil {
		return fmt.Errorf("load tiles %s: %w", opts.input, err)
	}
	c.Logger.Debug("loaded tiles", "count", len(tiles), "size", tiles[0].Size())

	solver := jigsaw.NewSolver(tiles, measure)
	solver.Logger = c.Logger
	sopt := jigsaw.DefaultOptions()
	sopt.Width, sopt.Height = opts.width, opts.height
	sopt.Workers = opts.workers
	sopt.Background = bg

	img, err := solver.Solve(ctx, sopt)
	if err != nil {
		return err
	}
	if err := utils.SaveImage(img, opts.output); err != nil {
		return err
	}
	prog.done("solved puzzle", "measure", opts.measure)

	p.success("Resulting image saved")
	p.file(opts.output)
	p.keyValue("size", fmt.Sprintf("%dx%d", solver.Placement.Width, solver.Placement.Height))
	p.keyValue("trees", len(solver.Assembly.Trees))
	if n := len(solver.Discarded); n > 0 {
		p.warning("%d of %d tiles left out", n, solver.PieceCount())
	}
	return nil
}
