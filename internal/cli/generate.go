package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexeyTsvetkov/jigsaw-puzzle/utils"
)

type generateOptions struct {
	input     string
	output    string
	pieceSize int
	seed      uint64
	shuffle   bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Cut an image into shuffled square tiles",
		Long: `Cut an image into square tiles and write them as 0.png, 1.png, ... into
the output directory, which is created if missing. Existing png tiles in
that directory are removed first.

Only full tiles are cut: pixels past the last full row or column of tiles
are dropped, so a 100x70 image with --piece-size 32 gives a 3x2 puzzle.
Cutting partial tiles padded with black would give 4x3 instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if useConfig(cmd, "seed") {
				opts.seed = c.cfg.Generate.Seed
			}
			if useConfig(cmd, "shuffle") {
				opts.shuffle = c.cfg.Generate.Shuffle
			}
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), printer{cmd.OutOrStdout()}, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "source image file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "directory to write tiles to")
	cmd.Flags().IntVarP(&opts.pieceSize, "piece-size", "p", 0, "tile edge length in pixels")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "shuffle seed (0 picks a random one)")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", true, "shuffle the tiles")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	cmd.MarkFlagRequired("piece-size")

	return cmd
}

func (o generateOptions) validate() error {
	if o.pieceSize <= 0 {
		return usageError("--piece-size must be a positive integer")
	}
	if info, err := os.Stat(o.input); err != nil || !info.Mode().IsRegular() {
		return usageError("--input must be an existing image file")
	}
	if info, err := os.Stat(o.output); err == nil && !info.IsDir() {
		return usageError("--output must be a directory (created if missing)")
	}
	return nil
}

func (c *CLI) runGenerate(ctx context.Context, p printer, opts generateOptions) error {
	prog := newProgress(c.Logger)

	img, err := utils.ReadImage(opts.input)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	if opts.shuffle {
		seed := opts.seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		c.Logger.Debug("shuffling tiles", "seed", seed)
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	puzzle, err := utils.GeneratePuzzle(img, opts.pieceSize, rng)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := utils.ClearDirectory(opts.output); err != nil {
		return fmt.Errorf("clear %s: %w", opts.output, err)
	}
	if err := utils.SaveTiles(opts.output, puzzle.Pieces); err != nil {
		return err
	}
	prog.done("generated puzzle", "tiles", len(puzzle.Pieces))

	p.success("Puzzle saved")
	p.file(opts.output)
	p.keyValue("width", puzzle.Width)
	p.keyValue("height", puzzle.Height)
	p.newline()
	p.nextStep("Solve", fmt.Sprintf("%s solve -i %s -o solved.png --width %d --height %d", appName, opts.output, puzzle.Width, puzzle.Height))
	return nil
}
